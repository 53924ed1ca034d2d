package resources

import "testing"

type fakeService struct{ id int }

func TestPutGetRoundTrip(t *testing.T) {
	r := New()
	Put(r, &fakeService{id: 7})
	got := Get[*fakeService](r)
	if got.id != 7 {
		t.Fatalf("expected id 7, got %d", got.id)
	}
}

func TestPutReplaces(t *testing.T) {
	r := New()
	Put(r, &fakeService{id: 1})
	Put(r, &fakeService{id: 2})
	if got := Get[*fakeService](r); got.id != 2 {
		t.Fatalf("expected replacement value, got %d", got.id)
	}
}

func TestLookupMissing(t *testing.T) {
	r := New()
	if _, ok := Lookup[*fakeService](r); ok {
		t.Fatalf("expected missing resource")
	}
}

func TestGetMissingPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for missing resource")
		}
	}()
	Get[*fakeService](New())
}
