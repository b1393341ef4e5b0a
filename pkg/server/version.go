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

package server

import (
	"net/http"
	"strings"
)

// DefaultAPIVersion is used when the client negotiates nothing.
const DefaultAPIVersion = "v1"

// vendorMIMEPrefix is the vendor media type carrying a version
// (e.g. "application/vnd.nvidia.sigil.v1+json").
const vendorMIMEPrefix = "application/vnd.nvidia.sigil.v"

// negotiateAPIVersion extracts the API version from the Accept header.
// Unknown or missing versions fall back to the default.
func negotiateAPIVersion(r *http.Request) string {
	accept := r.Header.Get("Accept")
	if !strings.Contains(accept, vendorMIMEPrefix) {
		return DefaultAPIVersion
	}

	rest := accept[strings.Index(accept, vendorMIMEPrefix)+len(vendorMIMEPrefix)-1:]
	// rest starts at "v"; cut at the format suffix or any list separator.
	version := strings.FieldsFunc(rest, func(r rune) bool {
		return r == '+' || r == ',' || r == ';' || r == ' '
	})[0]

	if isValidAPIVersion(version) {
		return version
	}
	return DefaultAPIVersion
}

// isValidAPIVersion reports whether the server speaks the version.
func isValidAPIVersion(version string) bool {
	return version == "v1"
}

// SetAPIVersionHeader reports the negotiated API version to the client.
func SetAPIVersionHeader(w http.ResponseWriter, version string) {
	w.Header().Set("X-API-Version", version)
}
