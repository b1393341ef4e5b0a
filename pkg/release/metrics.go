// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package release

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Update check metrics: how often devices ask, and what we tell them.
	checkTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sigil_release_checks_total",
			Help: "Total number of device update checks",
		},
		[]string{"decision"}, // update, current, or empty
	)
)

func observeCheck(d Decision) {
	switch {
	case d.Latest == nil:
		checkTotal.WithLabelValues("empty").Inc()
	case d.UpdateAvailable:
		checkTotal.WithLabelValues("update").Inc()
	default:
		checkTotal.WithLabelValues("current").Inc()
	}
}
