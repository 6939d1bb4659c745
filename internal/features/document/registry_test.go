package document

import (
	"context"
	"errors"
	"testing"
)

func TestMergeMultiple(t *testing.T) {
	existing := []Document{
		{Name: "carte-grise.pdf", Location: "C:\\uploads\\car\\carte-grise.pdf"},
		{Name: "assurance.pdf", Location: "C:\\uploads\\car\\assurance.pdf"},
	}
	newFiles := []LocalFile{
		{Name: "photo.jpg", Location: "blob:abc-123"},
		{Name: "facture.pdf", Location: "blob:def-456"},
	}

	got := Merge(existing, newFiles, true)

	if len(got) != len(existing)+len(newFiles) {
		t.Fatalf("Merge() returned %d items, want %d", len(got), len(existing)+len(newFiles))
	}

	// Existing first, then new, in supplied order
	wantOrder := []string{"carte-grise.pdf", "assurance.pdf", "photo.jpg", "facture.pdf"}
	for i, name := range wantOrder {
		if got[i].Name != name {
			t.Errorf("item %d: got %q, want %q", i, got[i].Name, name)
		}
	}

	for i := 0; i < len(existing); i++ {
		if got[i].Origin != OriginExisting {
			t.Errorf("item %d: origin = %q, want existing", i, got[i].Origin)
		}
	}
	for i := len(existing); i < len(got); i++ {
		if got[i].Origin != OriginNew {
			t.Errorf("item %d: origin = %q, want new", i, got[i].Origin)
		}
	}
}

func TestMergeEmptyLists(t *testing.T) {
	if got := Merge(nil, nil, true); len(got) != 0 {
		t.Errorf("Merge(nil, nil) returned %d items, want 0", len(got))
	}
	if got := Merge(nil, nil, false); len(got) != 0 {
		t.Errorf("Merge(nil, nil, single) returned %d items, want 0", len(got))
	}
}

func TestMergeSingleMode(t *testing.T) {
	existing := []Document{{Name: "old-policy.pdf", Location: "/srv/uploads/old-policy.pdf"}}
	newFiles := []LocalFile{
		{Name: "new-policy.pdf", Location: "blob:new-1"},
		{Name: "ignored.pdf", Location: "blob:new-2"},
	}

	got := Merge(existing, newFiles, false)

	if len(got) != 1 {
		t.Fatalf("single mode with new files returned %d items, want 1", len(got))
	}
	if got[0].Name != "new-policy.pdf" || got[0].Origin != OriginNew {
		t.Errorf("got %q (%s), want first new file", got[0].Name, got[0].Origin)
	}

	// Without new files the existing document shows through
	got = Merge(existing, nil, false)
	if len(got) != 1 || got[0].Name != "old-policy.pdf" || got[0].Origin != OriginExisting {
		t.Errorf("single mode without new files = %+v, want the existing document", got)
	}
}

func TestMergeDeduplicatesByLocation(t *testing.T) {
	existing := []Document{
		{Name: "a.pdf", Location: "/srv/uploads/a.pdf"},
		{Name: "a-again.pdf", Location: "/srv/uploads/a.pdf"},
	}
	newFiles := []LocalFile{
		{Name: "b.jpg", Location: "blob:1"},
		{Name: "b.jpg", Location: "blob:1"},
	}

	got := Merge(existing, newFiles, true)
	if len(got) != 2 {
		t.Fatalf("Merge() returned %d items, want 2 after dedup", len(got))
	}
}

type fakeRemover struct {
	called []Document
	err    error
}

func (f *fakeRemover) RemoveDocument(_ context.Context, doc Document) error {
	f.called = append(f.called, doc)
	return f.err
}

func TestDraftRemoveNewFile(t *testing.T) {
	draft := &Draft{
		NewFiles: []LocalFile{
			{Name: "one.jpg", Location: "blob:1"},
			{Name: "two.jpg", Location: "blob:2"},
		},
	}
	remover := &fakeRemover{}

	err := draft.Remove(context.Background(), Document{Origin: OriginNew, Location: "blob:1"}, remover)
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	if len(draft.NewFiles) != 1 || draft.NewFiles[0].Location != "blob:2" {
		t.Errorf("NewFiles = %+v, want only blob:2", draft.NewFiles)
	}
	if len(remover.called) != 0 {
		t.Errorf("remover was called %d times for a new file, want 0", len(remover.called))
	}
}

func TestDraftRemoveExisting(t *testing.T) {
	doc := Document{Origin: OriginExisting, Name: "report.pdf", Location: "/srv/uploads/report.pdf"}
	draft := &Draft{Existing: []Document{doc}}
	remover := &fakeRemover{}

	err := draft.Remove(context.Background(), doc, remover)
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	if len(remover.called) != 1 || remover.called[0].Location != doc.Location {
		t.Fatalf("remover called with %+v, want %s", remover.called, doc.Location)
	}
	if len(draft.Existing) != 0 {
		t.Errorf("Existing = %+v, want empty after confirmed delete", draft.Existing)
	}
	if len(draft.PendingDelete) != 0 {
		t.Errorf("PendingDelete = %+v, want empty after confirmation", draft.PendingDelete)
	}
}

func TestDraftRemoveExistingFailureRestores(t *testing.T) {
	doc := Document{Origin: OriginExisting, Name: "report.pdf", Location: "/srv/uploads/report.pdf"}
	draft := &Draft{Existing: []Document{doc}}
	remover := &fakeRemover{err: errors.New("backend down")}

	err := draft.Remove(context.Background(), doc, remover)
	if err == nil {
		t.Fatal("Remove() should surface the remover error")
	}

	// Local state only mutates after server confirmation
	if len(draft.Existing) != 1 || draft.Existing[0].Location != doc.Location {
		t.Errorf("Existing = %+v, want the document restored", draft.Existing)
	}
	if len(draft.PendingDelete) != 0 {
		t.Errorf("PendingDelete = %+v, want empty after rollback", draft.PendingDelete)
	}
}

func TestDraftRemoveDeferred(t *testing.T) {
	doc := Document{Origin: OriginExisting, Name: "report.pdf", Location: "/srv/uploads/report.pdf"}
	draft := &Draft{Existing: []Document{doc}}

	if err := draft.Remove(context.Background(), doc, nil); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	if len(draft.Existing) != 0 {
		t.Errorf("Existing = %+v, want staged out of display", draft.Existing)
	}
	if len(draft.PendingDelete) != 1 {
		t.Errorf("PendingDelete = %+v, want the staged document", draft.PendingDelete)
	}
}
