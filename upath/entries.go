package upath

import "iter"

// EachEntry calls fn for every entry of the directory p, in native order.
// Iteration stops at the first error returned by fn or by the operating
// system. The listing is always closed before EachEntry returns.
func (p Path) EachEntry(fn func(entry Path) error) error {
	it, err := NewEntryIterator(&p)
	if err != nil {
		return err
	}
	defer it.Close()

	for !it.Done() {
		if err := fn(it.Entry()); err != nil {
			return err
		}
		if err := it.Next(); err != nil {
			return err
		}
	}
	return nil
}

// Entries returns the names of every entry of the directory p.
func (p Path) Entries() ([]Path, error) {
	var out []Path
	err := p.EachEntry(func(entry Path) error {
		out = append(out, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// All returns an iterator over the entries of the directory p. An error ends
// the sequence and is yielded with an empty Path.
func (p Path) All() iter.Seq2[Path, error] {
	return func(yield func(Path, error) bool) {
		it, err := NewEntryIterator(&p)
		if err != nil {
			yield(Path{}, err)
			return
		}
		defer it.Close()

		for !it.Done() {
			if !yield(it.Entry(), nil) {
				return
			}
			if err := it.Next(); err != nil {
				yield(Path{}, err)
				return
			}
		}
	}
}
