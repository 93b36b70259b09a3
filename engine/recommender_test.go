package engine

import (
	"context"
	"reflect"
	"testing"

	"github.com/sayampalrecha/Movie-Recommendations-System/core"
)

func TestRecommender_Recommend(t *testing.T) {
	idx, d := testFixture(t)
	rec, err := NewRecommender(idx, d)
	if err != nil {
		t.Fatalf("NewRecommender() error = %v", err)
	}

	got, err := rec.Recommend(context.Background(), "A", 2)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	want := []core.Recommendation{
		{Title: "B", Score: 90.0},
		{Title: "D", Score: 50.0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Recommend() = %v, want %v", got, want)
	}
}

func TestRecommender_UnknownTitle(t *testing.T) {
	idx, d := testFixture(t)
	rec, _ := NewRecommender(idx, d)

	_, err := rec.Recommend(context.Background(), "Unknown Movie", 5)
	if !core.IsNotFound(err) {
		t.Errorf("Recommend(unknown) error = %v, want NOT_FOUND", err)
	}
}

func TestRecommender_Titles(t *testing.T) {
	idx, d := testFixture(t)
	rec, _ := NewRecommender(idx, d)

	want := []string{"A", "B", "C", "D"}
	if got := rec.Titles(); !reflect.DeepEqual(got, want) {
		t.Errorf("Titles() = %v, want %v", got, want)
	}
}
