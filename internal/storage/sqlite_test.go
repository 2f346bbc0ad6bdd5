package storage

import (
	"context"
	"reflect"
	"testing"

	"github.com/matsen/namenotes/internal/name"
)

func TestComputeStats(t *testing.T) {
	c := name.Collection{
		{Name: "Anna", Language: "Hebrew", Gender: name.Female},
		{Name: "Max", Language: "Latin", Gender: name.Male},
		{Name: "Maxine", Language: "Latin", Gender: name.Female},
		{Name: "Kim", Gender: name.Unisex},
		{Name: "Frodo", Gender: name.Male, Fictional: true},
		{Name: "Anna", Language: "Hebrew", Gender: name.Female},
	}

	st, err := ComputeStats(context.Background(), c)
	if err != nil {
		t.Fatalf("ComputeStats() error = %v", err)
	}

	if st.Total != 6 {
		t.Errorf("Total = %d, want 6", st.Total)
	}
	if st.Unique != 5 {
		t.Errorf("Unique = %d, want 5", st.Unique)
	}
	if st.Fictional != 1 {
		t.Errorf("Fictional = %d, want 1", st.Fictional)
	}

	wantGender := []Count{{"male", 2}, {"female", 3}, {"unisex", 1}}
	if !reflect.DeepEqual(st.ByGender, wantGender) {
		t.Errorf("ByGender = %v, want %v", st.ByGender, wantGender)
	}

	wantLang := []Count{{"", 2}, {"Hebrew", 2}, {"Latin", 2}}
	if !reflect.DeepEqual(st.ByLanguage, wantLang) {
		t.Errorf("ByLanguage = %v, want %v", st.ByLanguage, wantLang)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	st, err := ComputeStats(context.Background(), name.Collection{})
	if err != nil {
		t.Fatalf("ComputeStats() error = %v", err)
	}
	if st.Total != 0 || st.Unique != 0 || st.Fictional != 0 {
		t.Errorf("stats = %+v, want zeros", st)
	}
	if len(st.ByGender) != 3 {
		t.Errorf("ByGender has %d rows, want 3", len(st.ByGender))
	}
	if st.ByLanguage == nil || len(st.ByLanguage) != 0 {
		t.Errorf("ByLanguage = %v, want empty", st.ByLanguage)
	}
}

func TestIndexRebuild_Replaces(t *testing.T) {
	ctx := context.Background()
	ix, err := OpenIndex(ctx)
	if err != nil {
		t.Fatalf("OpenIndex() error = %v", err)
	}
	defer ix.Close()

	if _, err := ix.Rebuild(ctx, name.Collection{{Name: "A", Gender: name.Unisex}, {Name: "B", Gender: name.Unisex}}); err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}
	n, err := ix.Rebuild(ctx, name.Collection{{Name: "C", Gender: name.Male}})
	if err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}
	if n != 1 {
		t.Errorf("Rebuild() = %d, want 1", n)
	}

	st, err := ix.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if st.Total != 1 {
		t.Errorf("Total after rebuild = %d, want 1", st.Total)
	}
}
