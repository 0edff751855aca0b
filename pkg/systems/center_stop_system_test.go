package systems

import (
	"testing"

	"github.com/noguen/landing/pkg/components"
	"github.com/noguen/landing/pkg/config"
	"github.com/noguen/landing/pkg/ecs"
)

func TestCenterStopOffsets(t *testing.T) {
	tests := []struct {
		name        string
		dir         config.Direction
		wantInitial float64
		wantFinal   float64
	}{
		{"向右先露出右端", config.DirectionRight, 400, 250},
		{"向左从 0 开始", config.DirectionLeft, 0, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initial, final := CenterStopOffsets(1000, 600, 200, 100, tt.dir)
			if initial != tt.wantInitial || final != tt.wantFinal {
				t.Errorf("CenterStopOffsets() = (%v, %v), want (%v, %v)",
					initial, final, tt.wantInitial, tt.wantFinal)
			}
		})
	}
}

func newCenterStop(em *ecs.EntityManager, full, target string, dir config.Direction) (ecs.EntityID, *components.CenterStopComponent) {
	comp := &components.CenterStopComponent{
		FullText:   full,
		TargetText: target,
		Duration:   3,
		Direction:  dir,
	}
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, comp)
	return entity, comp
}

// TestCenterStopSequence 完整序列：初始位置 → 50ms → 滑动 → 填色
func TestCenterStopSequence(t *testing.T) {
	em := ecs.NewEntityManager()
	sys := NewCenterStopSystem(em, &runeMeasurer{advance: 10})
	sys.SetContainerWidth(1000)

	var slideEnds []ecs.EntityID
	sys.SetSlideEndHandler(func(e ecs.EntityID) { slideEnds = append(slideEnds, e) })

	entity, comp := newCenterStop(em, "AB_TARGET_CD", "TARGET", config.DirectionRight)

	sys.Update(0)
	if comp.Phase != components.CenterStopPositioned {
		t.Fatalf("Phase = %v, want Positioned", comp.Phase)
	}
	if comp.Prefix != "AB_" || comp.Suffix != "_CD" {
		t.Errorf("split = %q / %q, want AB_ / _CD", comp.Prefix, comp.Suffix)
	}
	// 宽度 120，目标左侧 30，目标宽 60
	if comp.InitialOffset != 880 || comp.FinalOffset != 440 {
		t.Errorf("offsets = (%v, %v), want (880, 440)", comp.InitialOffset, comp.FinalOffset)
	}
	if comp.TranslateX != comp.InitialOffset || comp.TransitionEnabled {
		t.Error("positioned state should sit at the initial offset without a transition")
	}

	sys.Update(0.03)
	if comp.Phase != components.CenterStopPositioned {
		t.Fatal("slide should not start before the 50ms delay")
	}
	sys.Update(0.02)
	if comp.Phase != components.CenterStopSliding || !comp.TransitionEnabled {
		t.Fatalf("Phase = %v, want Sliding after the delay", comp.Phase)
	}

	sys.Update(1.5)
	if comp.TranslateX >= 660 || comp.TranslateX <= 440 {
		t.Errorf("ease-out midpoint TranslateX = %v, want in (440, 660)", comp.TranslateX)
	}
	if comp.FadeIn {
		t.Error("fade must wait for the slide to finish")
	}

	sys.Update(1.5)
	if comp.Phase != components.CenterStopFadeIn || !comp.FadeIn {
		t.Fatalf("Phase = %v, want FadeIn", comp.Phase)
	}
	if comp.TranslateX != comp.FinalOffset {
		t.Errorf("TranslateX = %v, want final %v", comp.TranslateX, comp.FinalOffset)
	}
	if len(slideEnds) != 1 || slideEnds[0] != entity {
		t.Errorf("slide end notifications = %v, want exactly [%d]", slideEnds, entity)
	}

	sys.Update(config.CenterStopFadeDuration / 2)
	if comp.FadeProgress <= 0 || comp.FadeProgress >= 0.5 {
		t.Errorf("ease-in fade midpoint = %v, want in (0, 0.5)", comp.FadeProgress)
	}
	sys.Update(config.CenterStopFadeDuration / 2)
	if !approxEqual(comp.FadeProgress, 1) {
		t.Errorf("FadeProgress = %v, want 1", comp.FadeProgress)
	}

	sys.Update(10)
	if len(slideEnds) != 1 {
		t.Error("slide end should fire once")
	}
}

// TestCenterStopFinalOffsetIndependentOfDirection 最终偏移与方向无关
func TestCenterStopFinalOffsetIndependentOfDirection(t *testing.T) {
	em := ecs.NewEntityManager()
	sys := NewCenterStopSystem(em, &runeMeasurer{advance: 13})
	sys.SetContainerWidth(1280)

	_, left := newCenterStop(em, "GNONUE GNONEU NOGUEN NOGNEU", "NOGUEN", config.DirectionLeft)
	_, right := newCenterStop(em, "GNONUE GNONEU NOGUEN NOGNEU", "NOGUEN", config.DirectionRight)
	sys.Update(0)

	if left.FinalOffset != right.FinalOffset {
		t.Errorf("final offsets differ: left %v right %v", left.FinalOffset, right.FinalOffset)
	}
	if left.InitialOffset == right.InitialOffset {
		t.Error("initial offsets should depend on direction")
	}
}

// TestCenterStopTargetNotFound 找不到目标词时只描边、不滑动
func TestCenterStopTargetNotFound(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"目标不存在", "XYZ"},
		{"目标为空", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			sys := NewCenterStopSystem(em, &runeMeasurer{advance: 10})
			sys.SetContainerWidth(1000)

			_, comp := newCenterStop(em, "AB_TARGET_CD", tt.target, config.DirectionRight)
			for i := 0; i < 10; i++ {
				sys.Update(1)
			}

			if comp.Phase != components.CenterStopStatic {
				t.Errorf("Phase = %v, want Static", comp.Phase)
			}
			if comp.TranslateX != 0 || comp.TransitionEnabled || comp.FadeIn {
				t.Errorf("static row should not move or fill: %+v", comp)
			}
		})
	}
}

// TestCenterStopRestartOnInputChange 输入变化时重置并重新开始
func TestCenterStopRestartOnInputChange(t *testing.T) {
	em := ecs.NewEntityManager()
	sys := NewCenterStopSystem(em, &runeMeasurer{advance: 10})
	sys.SetContainerWidth(1000)

	_, comp := newCenterStop(em, "AB_TARGET_CD", "TARGET", config.DirectionRight)
	sys.Update(0)
	sys.Update(0.05)
	sys.Update(3)
	sys.Update(0.5)
	if !comp.FadeIn {
		t.Fatal("setup: expected finished sequence")
	}

	// 只改时长不重启
	comp.Duration = 5
	sys.Update(0.1)
	if comp.Phase != components.CenterStopFadeIn {
		t.Errorf("duration change restarted the sequence: %v", comp.Phase)
	}

	comp.Direction = config.DirectionLeft
	sys.Update(0)
	if comp.Phase != components.CenterStopPositioned {
		t.Fatalf("Phase = %v, want Positioned after direction change", comp.Phase)
	}
	if comp.FadeIn || comp.FadeProgress != 0 || comp.TransitionEnabled {
		t.Error("restart should clear fade and transition state")
	}
	if comp.TranslateX != 0 {
		t.Errorf("left restart TranslateX = %v, want 0", comp.TranslateX)
	}

	comp.TargetText = "CD"
	sys.Update(0)
	if comp.Prefix != "AB_TARGET_" {
		t.Errorf("Prefix = %q after target change", comp.Prefix)
	}
}

// TestCenterStopIgnoresResizeMidSequence 视口变化不打断已开始的序列
func TestCenterStopIgnoresResizeMidSequence(t *testing.T) {
	em := ecs.NewEntityManager()
	sys := NewCenterStopSystem(em, &runeMeasurer{advance: 10})
	sys.SetContainerWidth(1000)

	_, comp := newCenterStop(em, "AB_TARGET_CD", "TARGET", config.DirectionRight)
	sys.Update(0)
	sys.Update(0.05)

	final := comp.FinalOffset
	sys.SetContainerWidth(500)
	sys.Update(1)
	if comp.Phase != components.CenterStopSliding || comp.FinalOffset != final {
		t.Errorf("resize changed the running sequence: phase %v final %v", comp.Phase, comp.FinalOffset)
	}
}

// TestCenterStopWaitsForMeasurement 没有测量器或容器宽度为 0 时保持 Pending
func TestCenterStopWaitsForMeasurement(t *testing.T) {
	em := ecs.NewEntityManager()
	sys := NewCenterStopSystem(em, nil)

	_, comp := newCenterStop(em, "AB_TARGET_CD", "TARGET", config.DirectionRight)
	sys.Update(1)
	if comp.Phase != components.CenterStopPending {
		t.Fatalf("Phase = %v, want Pending without measurer", comp.Phase)
	}

	sys.SetMeasurer(&runeMeasurer{advance: 10})
	sys.Update(1)
	if comp.Phase != components.CenterStopPending {
		t.Fatalf("Phase = %v, want Pending without container width", comp.Phase)
	}

	sys.SetContainerWidth(1000)
	sys.Update(0)
	if comp.Phase != components.CenterStopPositioned {
		t.Errorf("Phase = %v, want Positioned once measurable", comp.Phase)
	}
}
