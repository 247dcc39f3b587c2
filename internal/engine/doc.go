// Package engine orchestrates batch analysis runs. It enumerates target
// files, reads them through bounds-checked memory regions, fans the
// per-file operations out over workers, and reports one error per failed
// file without aborting the batch unless configured to. The per-file
// operations themselves are synchronous and pure; all parallelism lives
// here, at the calling boundary. This package is internal; external
// consumers should use the stable facade in pkg/core.
package engine
