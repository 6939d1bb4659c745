package document

import "context"

// Remover deletes one persisted document on behalf of a parent record. The
// delete endpoint and its payload (a name or a URL) vary per entity, so the
// parent supplies the implementation.
type Remover interface {
	RemoveDocument(ctx context.Context, doc Document) error
}

// Merge produces the single list of documents to display for a parent record.
//
// With multiple=true the result is the persisted documents followed by the
// newly chosen ones, in supplied order. With multiple=false a non-empty new
// list wins outright: only its first entry is shown and any persisted
// documents are suppressed from display (not deleted).
func Merge(existing []Document, newFiles []LocalFile, multiple bool) []Document {
	if !multiple {
		if len(newFiles) > 0 {
			return []Document{fromLocal(newFiles[0])}
		}
		return tagExisting(existing)
	}

	out := make([]Document, 0, len(existing)+len(newFiles))
	seenExisting := make(map[string]bool, len(existing))
	for _, doc := range existing {
		if doc.Location != "" && seenExisting[doc.Location] {
			continue
		}
		seenExisting[doc.Location] = true
		doc.Origin = OriginExisting
		out = append(out, doc)
	}

	seenNew := make(map[string]bool, len(newFiles))
	for _, f := range newFiles {
		if f.Location != "" && seenNew[f.Location] {
			continue
		}
		seenNew[f.Location] = true
		out = append(out, fromLocal(f))
	}

	return out
}

func tagExisting(existing []Document) []Document {
	out := make([]Document, 0, len(existing))
	for _, doc := range existing {
		doc.Origin = OriginExisting
		out = append(out, doc)
	}
	return out
}

// Draft is the attachment state of one open form: what is persisted, what
// was just chosen, and what is staged for deletion.
type Draft struct {
	Existing      []Document
	NewFiles      []LocalFile
	PendingDelete []Document
}

// Remove takes one document out of the draft. A new document is dropped from
// the local list with no remote call. An existing document is staged into the
// pending-delete set and handed to the remover; if the remover fails the
// document is restored, so local state only changes after the backend
// confirms.
func (d *Draft) Remove(ctx context.Context, doc Document, remover Remover) error {
	if doc.Origin == OriginNew {
		for i, f := range d.NewFiles {
			if f.Location == doc.Location {
				d.NewFiles = append(d.NewFiles[:i], d.NewFiles[i+1:]...)
				break
			}
		}
		return nil
	}

	idx := -1
	for i, e := range d.Existing {
		if e.Location == doc.Location {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	staged := d.Existing[idx]
	d.Existing = append(d.Existing[:idx], d.Existing[idx+1:]...)
	d.PendingDelete = append(d.PendingDelete, staged)

	if remover == nil {
		// Deletion deferred to the parent save
		return nil
	}

	if err := remover.RemoveDocument(ctx, staged); err != nil {
		d.PendingDelete = d.PendingDelete[:len(d.PendingDelete)-1]
		d.Existing = append(d.Existing[:idx], append([]Document{staged}, d.Existing[idx:]...)...)
		return err
	}

	d.PendingDelete = d.PendingDelete[:len(d.PendingDelete)-1]
	return nil
}
