// internal/output/common.go
package output

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "index\tion\tz\tz_err\tb\tb_err\tlogN\tlogN_err\trf\trf_err"
