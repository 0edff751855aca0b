package systems

import (
	"testing"

	"github.com/noguen/landing/pkg/components"
	"github.com/noguen/landing/pkg/ecs"
)

func TestLayoutSection(t *testing.T) {
	ys, trailerY := LayoutSection([]float64{130, 120, 120, 120, 130}, 100, 800)

	// 总高 720，上下各留 40
	want := []float64{40, 170, 290, 410, 530}
	for i := range want {
		if ys[i] != want[i] {
			t.Errorf("ys[%d] = %v, want %v", i, ys[i], want[i])
		}
	}
	if trailerY != 660 {
		t.Errorf("trailerY = %v, want 660", trailerY)
	}
}

func TestLayoutSectionOverflow(t *testing.T) {
	ys, _ := LayoutSection([]float64{300, 300}, 0, 400)
	if ys[0] != -100 {
		t.Errorf("ys[0] = %v, overflowing content should start above the top", ys[0])
	}
}

func TestArrowStackHeight(t *testing.T) {
	if got := ArrowStackHeight(3, 40, 20, 20); got != 100 {
		t.Errorf("ArrowStackHeight(3, 40, 20, 20) = %v, want 100", got)
	}
	if got := ArrowStackHeight(0, 40, 20, 20); got != 0 {
		t.Errorf("no arrows should take no space, got %v", got)
	}
}

func rowHeightOf(_ ecs.EntityID, rc *components.RowComponent) float64 {
	return rc.Height
}

func TestGroupSections(t *testing.T) {
	em := ecs.NewEntityManager()
	MountContent(em, twoSectionContent())

	groups := GroupSections(em, 2, rowHeightOf)
	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(groups))
	}

	tests := []struct {
		name       string
		group      SectionRows
		wantRows   int
		wantArrows bool
	}{
		{"第一屏两行加箭头", groups[0], 2, true},
		{"第二屏一行无箭头", groups[1], 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.group.Entities) != tt.wantRows || len(tt.group.Heights) != tt.wantRows {
				t.Errorf("rows = %d / heights = %d, want %d", len(tt.group.Entities), len(tt.group.Heights), tt.wantRows)
			}
			if (tt.group.Arrows != 0) != tt.wantArrows {
				t.Errorf("Arrows = %v, want present=%v", tt.group.Arrows, tt.wantArrows)
			}
		})
	}

	want := []float64{130, 120}
	for i, h := range groups[0].Heights {
		if h != want[i] {
			t.Errorf("Heights[%d] = %v, want %v", i, h, want[i])
		}
	}
}

func TestGroupSectionsOrdersByRow(t *testing.T) {
	em := ecs.NewEntityManager()
	second := em.CreateEntity()
	ecs.AddComponent(em, second, &components.RowComponent{Section: 0, Row: 1, Height: 20})
	first := em.CreateEntity()
	ecs.AddComponent(em, first, &components.RowComponent{Section: 0, Row: 0, Height: 10})
	stray := em.CreateEntity()
	ecs.AddComponent(em, stray, &components.RowComponent{Section: 5, Row: 0, Height: 99})

	groups := GroupSections(em, 1, rowHeightOf)
	got := groups[0].Entities
	if len(got) != 2 || got[0] != first || got[1] != second {
		t.Errorf("Entities = %v, want [%d %d] (row order, out-of-range section ignored)", got, first, second)
	}
	if groups[0].Heights[0] != 10 || groups[0].Heights[1] != 20 {
		t.Errorf("Heights = %v, want [10 20]", groups[0].Heights)
	}
}

func TestGroupSectionsCustomHeight(t *testing.T) {
	em := ecs.NewEntityManager()
	MountContent(em, twoSectionContent())

	groups := GroupSections(em, 2, func(ecs.EntityID, *components.RowComponent) float64 { return 2 })
	for si, grp := range groups {
		for i, h := range grp.Heights {
			if h != 2 {
				t.Errorf("section %d Heights[%d] = %v, want 2", si, i, h)
			}
		}
	}
}
