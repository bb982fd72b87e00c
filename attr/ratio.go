// SPDX-License-Identifier: Unlicense OR MIT

package attr

// Ratio is a preset width to height ratio.
type Ratio uint8

const (
	Ratio1x1 Ratio = iota
	Ratio3x4
	Ratio4x3
	Ratio9x16
	Ratio16x9
	Ratio9x21
	Ratio21x9
)

// Value returns the ratio as width divided by height.
func (r Ratio) Value() float32 {
	switch r {
	case Ratio3x4:
		return 3. / 4
	case Ratio4x3:
		return 4. / 3
	case Ratio9x16:
		return 9. / 16
	case Ratio16x9:
		return 16. / 9
	case Ratio9x21:
		return 9. / 21
	case Ratio21x9:
		return 21. / 9
	default:
		return 1
	}
}

func (r Ratio) String() string {
	switch r {
	case Ratio1x1:
		return "1:1"
	case Ratio3x4:
		return "3:4"
	case Ratio4x3:
		return "4:3"
	case Ratio9x16:
		return "9:16"
	case Ratio16x9:
		return "16:9"
	case Ratio9x21:
		return "9:21"
	case Ratio21x9:
		return "21:9"
	default:
		return "?"
	}
}
