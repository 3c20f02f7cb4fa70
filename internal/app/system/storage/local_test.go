package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocal_PutAndRead(t *testing.T) {
	dir := t.TempDir()
	store := NewLocal(dir, "/files/facilities")

	err := store.Put(context.Background(), "facilities/2026/abc.png",
		strings.NewReader("png-bytes"), &PutOptions{ContentType: "image/png"})
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "facilities", "2026", "abc.png"))
	if err != nil {
		t.Fatalf("object not written: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("content: got %q", data)
	}
}

func TestLocal_PutReplaces(t *testing.T) {
	dir := t.TempDir()
	store := NewLocal(dir, "/files")

	ctx := context.Background()
	if err := store.Put(ctx, "a.txt", strings.NewReader("one"), nil); err != nil {
		t.Fatalf("first Put failed: %v", err)
	}
	if err := store.Put(ctx, "a.txt", strings.NewReader("two"), nil); err != nil {
		t.Fatalf("second Put failed: %v", err)
	}

	data, _ := os.ReadFile(filepath.Join(dir, "a.txt"))
	if string(data) != "two" {
		t.Errorf("Put should replace, got %q", data)
	}
}

func TestLocal_URL(t *testing.T) {
	store := NewLocal("/tmp/x", "/files/facilities/")
	if got := store.URL("2026/abc.png"); got != "/files/facilities/2026/abc.png" {
		t.Errorf("URL: got %q", got)
	}
}

func TestLocal_GetFullPath_RejectsTraversal(t *testing.T) {
	store := NewLocal(t.TempDir(), "/files")
	if _, err := store.GetFullPath("../../etc/passwd"); err == nil {
		t.Error("path traversal should be rejected")
	}
}

func TestS3_URLAndKey(t *testing.T) {
	s := &S3{bucket: "facilitiease-media", prefix: "facilities", region: "us-east-1"}
	want := "https://facilitiease-media.s3.us-east-1.amazonaws.com/facilities/abc.png"
	if got := s.URL("abc.png"); got != want {
		t.Errorf("URL: got %q, want %q", got, want)
	}
}
