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

// Package header provides the common envelope for firmware-stamp documents.
//
// This package defines the Header type embedded in stamp manifests, release
// indexes, and inspection reports to provide consistent metadata and
// versioning information.
//
// # Header Structure
//
// The Header contains standard fields for API versioning and metadata:
//
//	type Header struct {
//	    Kind       Kind              // Resource type (e.g., "StampManifest")
//	    APIVersion string            // Schema version (e.g., "v1")
//	    Metadata   map[string]string // Timestamp, tool version, custom pairs
//	}
//
// # Usage
//
// Initialize the embedded header when producing a document:
//
//	var m stamp.Manifest
//	m.Header.Init(header.KindStampManifest, "v1", toolVersion)
//
// Or construct one directly with options:
//
//	h := header.New(
//	    header.WithKind(header.KindReleaseIndex),
//	    header.WithAPIVersion("v1"),
//	    header.WithMetadata("channel", "stable"),
//	)
//
// # Serialization
//
// Headers serialize consistently to JSON and YAML:
//
//	kind: StampManifest
//	apiVersion: v1
//	metadata:
//	  timestamp: "2025-12-30T10:30:00Z"
//	  version: 1.4.0
//
// # API Versioning
//
// The APIVersion field enables evolution of document formats. Consumers
// should check it before parsing:
//
//	if doc.APIVersion != "v1" {
//	    return fmt.Errorf("unsupported API version: %s", doc.APIVersion)
//	}
//
// # Kind Field
//
// The Kind field identifies the document type:
//   - StampManifest: Results of a stamping run
//   - ReleaseIndex: Published releases per channel
//   - Inspection: Record read back out of an image
package header
