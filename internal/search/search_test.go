package search

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/stefanclaw/cardkit/internal/catalog"
)

func titles(v View) []string {
	out := make([]string, 0, len(v.Cards))
	for _, c := range v.Cards {
		out = append(out, c.Title)
	}
	return out
}

func TestInitialViewNotComputed(t *testing.T) {
	s := New(catalog.Default())
	v := s.View()
	if v.Computed {
		t.Error("initial view should not be computed")
	}
	if v.Empty() {
		t.Error("a view that was never computed should not report Empty")
	}
}

func TestFilterUpdatesView(t *testing.T) {
	s := New(catalog.Default())

	got := s.Filter("one")
	if diff := cmp.Diff([]string{"Card One"}, titles(got)); diff != "" {
		t.Errorf("Filter(one) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(got, s.View()); diff != "" {
		t.Errorf("View() differs from Filter result:\n%s", diff)
	}
	if s.View().Term != "one" {
		t.Errorf("View().Term = %q, want one", s.View().Term)
	}
}

func TestFilterNoMatchesIsEmpty(t *testing.T) {
	s := New(catalog.Default())
	v := s.Filter("nonexistent-xyz")
	if !v.Computed {
		t.Error("view should be computed")
	}
	if !v.Empty() {
		t.Errorf("view should be empty, got %v", titles(v))
	}
}

func TestSequentialFiltersReplaceView(t *testing.T) {
	s := New(catalog.Default())
	s.Filter("one")
	s.Filter("two")

	if diff := cmp.Diff([]string{"Card Two"}, titles(s.View())); diff != "" {
		t.Errorf("view after one→two mismatch:\n%s", diff)
	}

	// Recomputed from the full catalog, not from the previous view.
	s.Filter("card")
	if s.View().Len() != 6 {
		t.Errorf("view after widening = %d cards, want 6", s.View().Len())
	}
}

func TestReset(t *testing.T) {
	s := New(catalog.Default())
	s.Filter("six")
	v := s.Reset()
	if v.Len() != 6 || v.Term != "" {
		t.Errorf("Reset() = %d cards term %q, want 6 cards empty term", v.Len(), v.Term)
	}
}

func TestSubscribersNotifiedInOrder(t *testing.T) {
	s := New(catalog.Default())

	var calls []string
	s.Subscribe(func(v View) { calls = append(calls, "a:"+v.Term) })
	s.Subscribe(func(v View) { calls = append(calls, "b:"+v.Term) })

	s.Filter("x")
	s.Filter("y")

	want := []string{"a:x", "b:x", "a:y", "b:y"}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Errorf("notification order mismatch (-want +got):\n%s", diff)
	}
}

func TestUnsubscribe(t *testing.T) {
	s := New(catalog.Default())

	var a, b int
	cancelA := s.Subscribe(func(View) { a++ })
	s.Subscribe(func(View) { b++ })

	s.Filter("")
	cancelA()
	cancelA() // second cancel is a no-op
	s.Filter("one")

	if a != 1 {
		t.Errorf("cancelled subscriber called %d times, want 1", a)
	}
	if b != 2 {
		t.Errorf("remaining subscriber called %d times, want 2", b)
	}
}

func TestSubscriberCannotMutateView(t *testing.T) {
	s := New(catalog.Default())
	s.Subscribe(func(v View) {
		v.Cards[0].Title = "mutated"
	})

	s.Filter("one")
	if s.View().Cards[0].Title != "Card One" {
		t.Errorf("view mutated by subscriber: %q", s.View().Cards[0].Title)
	}
	if c, _ := s.Catalog().At(0); c.Title != "Card One" {
		t.Errorf("catalog mutated by subscriber: %q", c.Title)
	}
}

func TestSubscriberMayFilterAgain(t *testing.T) {
	s := New(catalog.Default())
	var seen []string
	s.Subscribe(func(v View) {
		seen = append(seen, v.Term)
		if v.Term == "first" {
			s.Filter("second")
		}
	})

	s.Filter("first")
	if diff := cmp.Diff([]string{"first", "second"}, seen); diff != "" {
		t.Errorf("re-entrant filter mismatch:\n%s", diff)
	}
	if s.View().Term != "second" {
		t.Errorf("final term = %q, want second", s.View().Term)
	}
}

func TestConcurrentFilter(t *testing.T) {
	s := New(catalog.Default())
	s.Subscribe(func(View) {})

	var wg sync.WaitGroup
	terms := []string{"", "one", "two", "card", "zzz"}
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(term string) {
			defer wg.Done()
			s.Filter(term)
			_ = s.View()
		}(terms[i%len(terms)])
	}
	wg.Wait()

	if !s.View().Computed {
		t.Error("view should be computed after concurrent filters")
	}
	if s.Catalog().Len() != 6 {
		t.Errorf("catalog len = %d, want 6", s.Catalog().Len())
	}
}

func TestCustomCatalog(t *testing.T) {
	cat := catalog.New([]catalog.Card{
		{Title: "Apple"},
		{Title: "Pineapple"},
		{Title: "Pear"},
	})
	s := New(cat, WithLogger(nil))
	if diff := cmp.Diff([]string{"Apple", "Pineapple"}, titles(s.Filter("APPLE"))); diff != "" {
		t.Errorf("custom catalog mismatch:\n%s", diff)
	}
}
