// Package cli implements the sigil command line interface.
//
// The CLI covers the full firmware versioning workflow: parsing and
// comparing version strings, encoding and decoding the fixed binary
// version record, stamping records into firmware images, inspecting
// stamped images, querying release indexes, and running the release
// service in-process.
//
// Commands:
//   - parse     - parse a version string and print its fields
//   - compare   - print the ordering relation between two versions
//   - encode    - encode a version into a binary record
//   - decode    - decode a record from text or from an image file
//   - stamp     - stamp version records into firmware images
//   - inspect   - read the record back out of an image
//   - release   - query a release index (list, latest, check)
//   - serve     - run the release-info HTTP service
//
// Output flags (--output, --format) and most inputs can also be set via
// SIGIL_* environment variables.
package cli
