package similarity

import (
	"context"
	"reflect"
	"testing"

	"github.com/sayampalrecha/Movie-Recommendations-System/core"
	"github.com/sayampalrecha/Movie-Recommendations-System/store"
)

func TestStoreSource_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	defer kv.Close()

	d, _ := NewDense(testMatrix())
	src, err := SaveRows(ctx, kv, "sim:rows", d)
	if err != nil {
		t.Fatalf("SaveRows() error = %v", err)
	}
	if src.Len() != d.Len() {
		t.Fatalf("Len() = %d, want %d", src.Len(), d.Len())
	}

	// 落库再读出的每一行都必须与源矩阵一致
	for i := 0; i < d.Len(); i++ {
		want, _ := d.Row(ctx, i)
		got, err := src.Row(ctx, i)
		if err != nil {
			t.Fatalf("Row(%d) error = %v", i, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("row %d = %v, want %v", i, got, want)
		}
	}
}

func TestStoreSource_Errors(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	defer kv.Close()

	src := &StoreSource{Store: kv, Key: "sim:rows", N: 2}

	if _, err := src.Row(ctx, 5); !core.IsIndexOutOfRange(err) {
		t.Errorf("Row(5) error = %v, want INDEX_OUT_OF_RANGE", err)
	}

	// Missing row is a data-integrity problem, not an empty row.
	if _, err := src.Row(ctx, 0); !core.IsMalformedRow(err) {
		t.Errorf("Row(missing) error = %v, want MALFORMED_ROW", err)
	}

	// Wrong row length stored.
	if err := kv.HSet(ctx, "sim:rows", "0", []byte("[0.1]")); err != nil {
		t.Fatalf("HSet() error = %v", err)
	}
	if _, err := src.Row(ctx, 0); !core.IsMalformedRow(err) {
		t.Errorf("Row(short) error = %v, want MALFORMED_ROW", err)
	}

	// Unparseable content.
	if err := kv.HSet(ctx, "sim:rows", "1", []byte("not json")); err != nil {
		t.Fatalf("HSet() error = %v", err)
	}
	if _, err := src.Row(ctx, 1); !core.IsMalformedRow(err) {
		t.Errorf("Row(bad json) error = %v, want MALFORMED_ROW", err)
	}
}
