package domain

// MaterializedFile describes the outcome of copying the template module into
// the host source tree.
type MaterializedFile struct {
	// Path is the absolute path of the written (or already current) file.
	Path string

	// UpToDate is true when the destination already had the template content
	// and no write was performed.
	UpToDate bool
}
