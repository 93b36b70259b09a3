package engine

import (
	"context"
	"math"
	"reflect"
	"testing"

	"github.com/sayampalrecha/Movie-Recommendations-System/catalog"
	"github.com/sayampalrecha/Movie-Recommendations-System/core"
	"github.com/sayampalrecha/Movie-Recommendations-System/similarity"
)

// 四部电影的固定样例：A 的相似度行 [1.0, 0.9, 0.2, 0.5]
func testFixture(t *testing.T) (*catalog.Index, *similarity.Dense) {
	t.Helper()
	idx, err := catalog.NewIndex([]string{"A", "B", "C", "D"})
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}
	d, err := similarity.NewDense([][]float64{
		{1.0, 0.9, 0.2, 0.5},
		{0.9, 1.0, 0.0, 0.3},
		{0.2, 0.0, 1.0, 0.1},
		{0.5, 0.3, 0.1, 1.0},
	})
	if err != nil {
		t.Fatalf("NewDense() error = %v", err)
	}
	return idx, d
}

func TestEngine_Recommend(t *testing.T) {
	idx, d := testFixture(t)
	eng, err := New(idx, d)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		name  string
		index int
		k     int
		want  []core.Recommendation
	}{
		{
			name:  "top 2 for A",
			index: 0,
			k:     2,
			want: []core.Recommendation{
				{Title: "B", Score: 90.0},
				{Title: "D", Score: 50.0},
			},
		},
		{
			name:  "k larger than catalog returns all but self",
			index: 0,
			k:     10,
			want: []core.Recommendation{
				{Title: "B", Score: 90.0},
				{Title: "D", Score: 50.0},
				{Title: "C", Score: 20.0},
			},
		},
		{
			name:  "default k when k <= 0",
			index: 0,
			k:     0,
			want: []core.Recommendation{
				{Title: "B", Score: 90.0},
				{Title: "D", Score: 50.0},
				{Title: "C", Score: 20.0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eng.Recommend(context.Background(), tt.index, tt.k)
			if err != nil {
				t.Fatalf("Recommend() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Recommend() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEngine_Recommend_Properties(t *testing.T) {
	idx, d := testFixture(t)
	eng, _ := New(idx, d)
	ctx := context.Background()

	for index := 0; index < idx.Len(); index++ {
		self, _ := idx.TitleAt(index)
		recs, err := eng.Recommend(ctx, index, 3)
		if err != nil {
			t.Fatalf("Recommend(%d) error = %v", index, err)
		}

		if len(recs) > 3 || len(recs) > idx.Len()-1 {
			t.Errorf("index %d: got %d recs", index, len(recs))
		}
		for i, r := range recs {
			if r.Title == self {
				t.Errorf("index %d: query movie %q in results", index, self)
			}
			if r.Score < 0 || r.Score > 100 {
				t.Errorf("index %d: score %v out of [0,100]", index, r.Score)
			}
			if i > 0 && recs[i-1].Score < r.Score {
				t.Errorf("index %d: scores not non-increasing: %v", index, recs)
			}
		}

		// Idempotence: identical inputs, identical output.
		again, _ := eng.Recommend(ctx, index, 3)
		if !reflect.DeepEqual(recs, again) {
			t.Errorf("index %d: repeated call differs", index)
		}
	}
}

func TestEngine_Recommend_TieBreak(t *testing.T) {
	idx, err := catalog.NewIndex([]string{"A", "B", "C", "D"})
	if err != nil {
		t.Fatal(err)
	}
	// B, C, D all tie at 0.5: order must be by ascending position.
	d, err := similarity.NewDense([][]float64{
		{1.0, 0.5, 0.5, 0.5},
		{0.5, 1.0, 0.5, 0.5},
		{0.5, 0.5, 1.0, 0.5},
		{0.5, 0.5, 0.5, 1.0},
	})
	if err != nil {
		t.Fatal(err)
	}
	eng, _ := New(idx, d)

	got, err := eng.Recommend(context.Background(), 0, 3)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	want := []core.Recommendation{
		{Title: "B", Score: 50.0},
		{Title: "C", Score: 50.0},
		{Title: "D", Score: 50.0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Recommend() = %v, want %v", got, want)
	}
}

func TestEngine_Recommend_SelfNotMaximal(t *testing.T) {
	// 畸形输入：自相似度不是行内最大值。按位置恒等排除仍然只剔除
	// 查询电影本身，不会误伤真正的第一名。
	idx, _ := catalog.NewIndex([]string{"A", "B", "C"})
	d, _ := similarity.NewDense([][]float64{
		{0.1, 0.95, 0.3},
		{0.95, 0.1, 0.2},
		{0.3, 0.2, 0.1},
	})
	eng, _ := New(idx, d)

	got, err := eng.Recommend(context.Background(), 0, 2)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	want := []core.Recommendation{
		{Title: "B", Score: 95.0},
		{Title: "C", Score: 30.0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Recommend() = %v, want %v", got, want)
	}
}

func TestEngine_Recommend_Clamping(t *testing.T) {
	idx, _ := catalog.NewIndex([]string{"A", "B", "C"})
	// 损坏数据：超过 1 与负数的相似度都要被钳制
	d, _ := similarity.NewDense([][]float64{
		{1.0, 1.2, -0.1},
		{1.2, 1.0, 0.0},
		{-0.1, 0.0, 1.0},
	})
	eng, _ := New(idx, d)

	got, err := eng.Recommend(context.Background(), 0, 2)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	want := []core.Recommendation{
		{Title: "B", Score: 100.0},
		{Title: "C", Score: 0.0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Recommend() = %v, want %v", got, want)
	}
}

func TestEngine_Recommend_IndexOutOfRange(t *testing.T) {
	idx, d := testFixture(t)
	eng, _ := New(idx, d)

	for _, index := range []int{-1, 4, 100} {
		_, err := eng.Recommend(context.Background(), index, 2)
		if !core.IsIndexOutOfRange(err) {
			t.Errorf("Recommend(%d) error = %v, want INDEX_OUT_OF_RANGE", index, err)
		}
	}
}

// badRowSource returns rows that do not match the catalog size.
type badRowSource struct {
	n   int
	row []float64
}

func (b *badRowSource) Len() int                                    { return b.n }
func (b *badRowSource) Row(context.Context, int) ([]float64, error) { return b.row, nil }

func TestEngine_Recommend_MalformedRow(t *testing.T) {
	idx, _ := catalog.NewIndex([]string{"A", "B", "C"})

	tests := []struct {
		name string
		row  []float64
	}{
		{name: "short row", row: []float64{1.0, 0.5}},
		{name: "NaN row", row: []float64{1.0, math.NaN(), 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng, err := New(idx, &badRowSource{n: 3, row: tt.row})
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			_, err = eng.Recommend(context.Background(), 0, 2)
			if !core.IsMalformedRow(err) {
				t.Errorf("Recommend() error = %v, want MALFORMED_ROW", err)
			}
		})
	}
}

func TestNew_SizeMismatch(t *testing.T) {
	idx, _ := catalog.NewIndex([]string{"A", "B"})
	d, _ := similarity.NewDense([][]float64{
		{1.0, 0.5, 0.1},
		{0.5, 1.0, 0.2},
		{0.1, 0.2, 1.0},
	})
	if _, err := New(idx, d); err == nil {
		t.Error("New() expected size mismatch error, got nil")
	}
}

func TestEngine_RepresentationTransparency(t *testing.T) {
	idx, d := testFixture(t)
	csr := similarity.FromDense(d)

	denseEng, _ := New(idx, d)
	csrEng, _ := New(idx, csr)
	ctx := context.Background()

	// 稠密与压缩表示对每个行号都必须给出完全一致的推荐
	for index := 0; index < idx.Len(); index++ {
		fromDense, err := denseEng.Recommend(ctx, index, 3)
		if err != nil {
			t.Fatalf("dense Recommend(%d) error = %v", index, err)
		}
		fromCSR, err := csrEng.Recommend(ctx, index, 3)
		if err != nil {
			t.Fatalf("csr Recommend(%d) error = %v", index, err)
		}
		if !reflect.DeepEqual(fromDense, fromCSR) {
			t.Errorf("index %d: dense %v != csr %v", index, fromDense, fromCSR)
		}
	}
}
