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
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	apicallerror "github.com/ahparhizgar/api-call-error"
)

// Metrics counts classified API call errors.
//
// The counter is apicall_errors_total with labels kind, code (empty for
// network errors) and class (the Classify result for network errors, empty
// otherwise).
type Metrics struct {
	errors *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them with reg. A nil reg
// leaves them unregistered, which is handy in tests.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "apicall",
			Name:      "errors_total",
			Help:      "API call errors by kind, status code and network failure class.",
		}, []string{"kind", "code", "class"}),
	}
	if reg != nil {
		if err := reg.Register(m.errors); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Collector exposes the underlying counter, e.g. for prometheus/testutil.
func (m *Metrics) Collector() *prometheus.CounterVec {
	return m.errors
}

func (m *Metrics) observe(err apicallerror.Error, class string) {
	if m == nil {
		return
	}
	code := ""
	if he, ok := err.(apicallerror.HTTPError); ok {
		code = strconv.Itoa(he.Code())
	}
	m.errors.WithLabelValues(string(err.Kind()), code, class).Inc()
}
