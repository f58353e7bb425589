package types

import "math"

// AttributeValue is one named rating shown in an attribute chart.
type AttributeValue struct {
	Name  string
	Value int
}

// AttributeTier buckets a rating for coloring.
type AttributeTier int

const (
	TierLow AttributeTier = iota
	TierMid
	TierHigh
)

// TierFor buckets a rating: 80+ high, 50+ mid, otherwise low.
func TierFor(value int) AttributeTier {
	switch {
	case value >= 80:
		return TierHigh
	case value >= 50:
		return TierMid
	default:
		return TierLow
	}
}

// Attributes lists the item's non-zero ratings in display order.
func Attributes(d ItemDetail) []AttributeValue {
	all := []AttributeValue{
		{"Stamina", d.Stamina},
		{"Pitching Clutch", d.PitchingClutch},
		{"Hits Per BF", d.HitsPerBF},
		{"K Per BF", d.KPerBF},
		{"BB Per BF", d.BBPerBF},
		{"HR Per BF", d.HRPerBF},
		{"Pitch Velocity", d.PitchVelocity},
		{"Pitch Control", d.PitchControl},
		{"Pitch Movement", d.PitchMovement},
		{"Contact Left", d.ContactLeft},
		{"Contact Right", d.ContactRight},
		{"Power Left", d.PowerLeft},
		{"Power Right", d.PowerRight},
		{"Plate Vision", d.PlateVision},
		{"Plate Discipline", d.PlateDiscipline},
		{"Batting Clutch", d.BattingClutch},
		{"Bunting Ability", d.BuntingAbility},
		{"Drag Bunting Ability", d.DragBuntingAbility},
		{"Hitting Durability", d.HittingDurability},
		{"Fielding Durability", d.FieldingDurability},
		{"Fielding Ability", d.FieldingAbility},
		{"Arm Strength", d.ArmStrength},
		{"Arm Accuracy", d.ArmAccuracy},
		{"Reaction Time", d.ReactionTime},
		{"Blocking", d.Blocking},
		{"Speed", d.Speed},
		{"Baserunning Ability", d.BaserunningAbility},
		{"Baserunning Aggression", d.BaserunningAggression},
	}

	out := make([]AttributeValue, 0, len(all))
	for _, a := range all {
		if a.Value > 0 {
			out = append(out, a)
		}
	}
	return out
}

// AxisMax returns the chart ceiling for values: the next multiple of
// twenty above the largest value, plus twenty of headroom.
func AxisMax(values ...int) int {
	largest := 0
	for _, v := range values {
		if v > largest {
			largest = v
		}
	}
	return int(math.Ceil(float64(largest)/20))*20 + 20
}

// PitchValues flattens speed, control and movement for axis scaling.
func PitchValues(pitches []Pitch) []int {
	out := make([]int, 0, len(pitches)*3)
	for _, p := range pitches {
		out = append(out, p.Speed, p.Control, p.Movement)
	}
	return out
}
