package document

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want Kind
	}{
		{"Image By Mime", Document{Name: "anything.bin", MimeHint: "image/png"}, KindImage},
		{"Image By Upper Case Extension", Document{Name: "photo.JPG"}, KindImage},
		{"Image By Webp Extension", Document{Name: "scan.webp"}, KindImage},
		{"Pdf By Mime", Document{Name: "stored", MimeHint: "application/pdf"}, KindPdf},
		{"Pdf By Extension", Document{Name: "report.pdf"}, KindPdf},
		{"Generic Unknown Extension", Document{Name: "data.xyz"}, KindGeneric},
		{"Generic No Extension", Document{Name: "README"}, KindGeneric},
		{"Generic Empty", Document{}, KindGeneric},
		{"Extension From Location", Document{Location: "C:\\uploads\\car\\photo.png"}, KindImage},
		{"Mime Wins Over Extension", Document{Name: "weird.pdf", MimeHint: "image/jpeg"}, KindImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.doc); got != tt.want {
				t.Errorf("Classify(%+v) = %q, want %q", tt.doc, got, tt.want)
			}
			// Classify is idempotent: same input, same answer
			if got := Classify(tt.doc); got != tt.want {
				t.Errorf("Classify() second call = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveURL(t *testing.T) {
	origin := "http://localhost:5000"

	tests := []struct {
		name string
		doc  Document
		want string
	}{
		{
			"Transient Unchanged",
			Document{Location: "blob:550e8400-e29b"},
			"blob:550e8400-e29b",
		},
		{
			"Windows Path",
			Document{Location: "C:\\uploads\\car\\x-report.pdf"},
			"http://localhost:5000/uploads/x-report.pdf",
		},
		{
			"Unix Path",
			Document{Location: "/srv/data/uploads/photo.jpg"},
			"http://localhost:5000/uploads/photo.jpg",
		},
		{
			"Bare Filename",
			Document{Location: "contract.pdf"},
			"http://localhost:5000/uploads/contract.pdf",
		},
		{
			"Empty Location",
			Document{},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveURL(tt.doc, origin); got != tt.want {
				t.Errorf("ResolveURL(%q) = %q, want %q", tt.doc.Location, got, tt.want)
			}
		})
	}
}

func TestLastSegment(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"C:\\uploads\\car\\x-report.pdf", "x-report.pdf"},
		{"/srv/uploads/photo.jpg", "photo.jpg"},
		{"mixed\\sep/last.png", "last.png"},
		{"plain.txt", "plain.txt"},
		{"", ""},
		{"///", ""},
	}

	for _, tt := range tests {
		if got := lastSegment(tt.path); got != tt.want {
			t.Errorf("lastSegment(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestMimeFromExtension(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"photo.JPG", "image/jpeg"},
		{"scan.png", "image/png"},
		{"contract.pdf", "application/pdf"},
		{"notes.txt", "text/plain"},
		{"unknown.xyz", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := mimeFromExtension(tt.name); got != tt.want {
			t.Errorf("mimeFromExtension(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
