package scanner

import "time"

// FileInfo represents a deletion candidate found during scanning
type FileInfo struct {
	Path    string    `json:"path" yaml:"path"`
	Size    int64     `json:"size" yaml:"size"`
	ModTime time.Time `json:"mod_time" yaml:"mod_time"`
}

// ScanResult represents the result of scanning one category. TotalSize is
// always the exact sum of the sizes of Files. Each path appears at most
// once even when category roots overlap.
type ScanResult struct {
	Files     []FileInfo `json:"files" yaml:"files"`
	TotalSize int64      `json:"total_size" yaml:"total_size"`

	seen map[string]struct{}
}

// Paths returns just the file paths, in scan order.
func (r *ScanResult) Paths() []string {
	paths := make([]string, len(r.Files))
	for i, f := range r.Files {
		paths[i] = f.Path
	}
	return paths
}

// Count returns the number of candidate files.
func (r *ScanResult) Count() int {
	return len(r.Files)
}

func (r *ScanResult) add(path string, size int64, modTime time.Time) {
	if r.seen == nil {
		r.seen = make(map[string]struct{})
	}
	if _, dup := r.seen[path]; dup {
		return
	}
	r.seen[path] = struct{}{}
	r.Files = append(r.Files, FileInfo{Path: path, Size: size, ModTime: modTime})
	r.TotalSize += size
}

func (r *ScanResult) merge(other *ScanResult) {
	for _, f := range other.Files {
		r.add(f.Path, f.Size, f.ModTime)
	}
}
