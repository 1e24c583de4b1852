package domain

// CandidatePool is the ordered set of files that may replace an include
// directive. Lookups are by base name and the first file with a given name
// wins; later files sharing that name are unreachable.
type CandidatePool struct {
	files  []*SourceFile
	byName map[string]*SourceFile
}

// NewCandidatePool indexes files by name, keeping the first of each name.
func NewCandidatePool(files []*SourceFile) *CandidatePool {
	pool := &CandidatePool{
		files:  files,
		byName: make(map[string]*SourceFile, len(files)),
	}

	for _, file := range files {
		if _, ok := pool.byName[file.Name]; !ok {
			pool.byName[file.Name] = file
		}
	}

	return pool
}

// Lookup returns the first pool file whose name equals name.
func (p *CandidatePool) Lookup(name string) (*SourceFile, bool) {
	if p == nil {
		return nil, false
	}

	file, ok := p.byName[name]

	return file, ok
}

// Contains reports whether file itself is part of the pool.
func (p *CandidatePool) Contains(file *SourceFile) bool {
	if p == nil {
		return false
	}

	for _, candidate := range p.files {
		if candidate == file {
			return true
		}
	}

	return false
}

// Files returns the pool members in lookup order.
func (p *CandidatePool) Files() []*SourceFile {
	if p == nil {
		return nil
	}

	return p.files
}

// Len returns the number of files in the pool.
func (p *CandidatePool) Len() int {
	if p == nil {
		return 0
	}

	return len(p.files)
}
