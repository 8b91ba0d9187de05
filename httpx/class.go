/*
   Copyright 2025 The api-call-error Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package httpx

import (
	"context"
	"crypto/x509"
	"errors"
	"io"
	"net"
	"os"
	"strings"
	"syscall"
)

// Failure classes attached to network errors in logs, spans and metrics.
// The names follow the Unix errno they resemble.
const (
	ETIMEDOUT              = "ETIMEDOUT"
	EINTR                  = "EINTR"
	EEOF                   = "EEOF"
	ECONNREFUSED           = "ECONNREFUSED"
	ECONNRESET             = "ECONNRESET"
	ECONNABORTED           = "ECONNABORTED"
	EHOSTUNREACH           = "EHOSTUNREACH"
	ENETUNREACH            = "ENETUNREACH"
	EDNS_NONAME            = "EDNS_NONAME"
	ETLS_HOSTNAME_MISMATCH = "ETLS_HOSTNAME_MISMATCH"
	ETLS_CA_UNKNOWN        = "ETLS_CA_UNKNOWN"
	ETLS_CERT_INVALID      = "ETLS_CERT_INVALID"
	EGENERIC               = "EGENERIC"
)

var errnoClasses = []struct {
	errno syscall.Errno
	class string
}{
	{syscall.ECONNREFUSED, ECONNREFUSED},
	{syscall.ECONNRESET, ECONNRESET},
	{syscall.ECONNABORTED, ECONNABORTED},
	{syscall.EHOSTUNREACH, EHOSTUNREACH},
	{syscall.ENETUNREACH, ENETUNREACH},
	{syscall.ETIMEDOUT, ETIMEDOUT},
}

// Classify maps a transport failure onto a failure class. The nil error
// maps to "".
func Classify(err error) string {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, os.ErrDeadlineExceeded):
		return ETIMEDOUT
	case errors.Is(err, context.Canceled), errors.Is(err, net.ErrClosed):
		return EINTR
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return EEOF
	}
	for _, ec := range errnoClasses {
		if errors.Is(err, ec.errno) {
			return ec.class
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
		return EDNS_NONAME
	}
	var hostErr x509.HostnameError
	if errors.As(err, &hostErr) {
		return ETLS_HOSTNAME_MISMATCH
	}
	var authErr x509.UnknownAuthorityError
	if errors.As(err, &authErr) {
		return ETLS_CA_UNKNOWN
	}
	var certErr x509.CertificateInvalidError
	if errors.As(err, &certErr) {
		return ETLS_CERT_INVALID
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ETIMEDOUT
	}
	if strings.HasSuffix(err.Error(), "no such host") {
		return EDNS_NONAME
	}
	return EGENERIC
}
