package store

import "context"

// deleteBatch is the WriteBatch shared by both adapters: queued document
// deletes executed one by one. A failed delete stops the commit; earlier
// deletes are not rolled back.
type deleteBatch struct {
	docs []Doc
}

// NewDeleteBatch returns an empty WriteBatch.
func NewDeleteBatch() WriteBatch {
	return &deleteBatch{}
}

func (b *deleteBatch) Delete(doc Doc) {
	b.docs = append(b.docs, doc)
}

func (b *deleteBatch) Commit(ctx context.Context) error {
	for _, doc := range b.docs {
		if err := doc.Delete(ctx); err != nil {
			return err
		}
	}
	return nil
}
