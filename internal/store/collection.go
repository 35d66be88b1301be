package store

// Document is anything the store can key by id.
type Document interface {
	DocumentID() string
}

// Collection is a typed view over one named collection in the store. All
// predicate operations filter in memory over the full collection; the
// store does no indexing.
type Collection[T Document] struct {
	store *Store
	name  string
}

func NewCollection[T Document](s *Store, name string) *Collection[T] {
	return &Collection[T]{store: s, name: name}
}

// All returns every document in the collection.
func (c *Collection[T]) All() ([]T, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	return c.load()
}

// Find returns the first document matching pred, or nil if none does.
func (c *Collection[T]) Find(pred func(T) bool) (*T, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	docs, err := c.load()
	if err != nil {
		return nil, err
	}
	for i := range docs {
		if pred(docs[i]) {
			return &docs[i], nil
		}
	}
	return nil, nil
}

// Filter returns every document matching pred.
func (c *Collection[T]) Filter(pred func(T) bool) ([]T, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	docs, err := c.load()
	if err != nil {
		return nil, err
	}
	var out []T
	for i := range docs {
		if pred(docs[i]) {
			out = append(out, docs[i])
		}
	}
	return out, nil
}

// Insert appends doc to the collection. It does not check for duplicate ids.
func (c *Collection[T]) Insert(doc T) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	docs, err := c.load()
	if err != nil {
		return err
	}
	return c.store.write(c.name, append(docs, doc))
}

// Replace swaps the document with the given id for doc. When upsert is true
// a missing id inserts instead; otherwise it reports false.
func (c *Collection[T]) Replace(id string, doc T, upsert bool) (bool, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	docs, err := c.load()
	if err != nil {
		return false, err
	}
	for i := range docs {
		if docs[i].DocumentID() == id {
			docs[i] = doc
			return true, c.store.write(c.name, docs)
		}
	}
	if !upsert {
		return false, nil
	}
	return true, c.store.write(c.name, append(docs, doc))
}

// DeleteByID removes the document with the given id.
func (c *Collection[T]) DeleteByID(id string) (bool, error) {
	return c.deleteWhere(func(d T) bool { return d.DocumentID() == id }, true)
}

// DeleteOne removes the first document matching pred.
func (c *Collection[T]) DeleteOne(pred func(T) bool) (bool, error) {
	return c.deleteWhere(pred, true)
}

// DeleteMany removes every document matching pred and reports whether any
// were removed.
func (c *Collection[T]) DeleteMany(pred func(T) bool) (bool, error) {
	return c.deleteWhere(pred, false)
}

func (c *Collection[T]) deleteWhere(pred func(T) bool, single bool) (bool, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	docs, err := c.load()
	if err != nil {
		return false, err
	}

	kept := docs[:0:0]
	deleted := false
	for i := range docs {
		if pred(docs[i]) && (!single || !deleted) {
			deleted = true
			continue
		}
		kept = append(kept, docs[i])
	}
	if !deleted {
		return false, nil
	}
	return true, c.store.write(c.name, kept)
}

// load decodes the collection. Caller must hold the store mutex.
func (c *Collection[T]) load() ([]T, error) {
	var docs []T
	if err := c.store.read(c.name, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
