package geom

import "math"

// TxType classifies a transform by the most general operation it performs.
// The values are ordered: each type includes all types before it.
type TxType uint8

const (
	TxNone TxType = iota
	TxTranslate
	TxScale
	TxRotate
	TxShear
	TxProject
)

var txNames = [...]string{"None", "Translate", "Scale", "Rotate", "Shear", "Project"}

func (t TxType) String() string {
	if int(t) < len(txNames) {
		return txNames[t]
	}
	return "Unknown"
}

func fuzzyZero(v float64) bool {
	return math.Abs(v) <= 1e-12
}

// Type returns the classification of m.
func (m Matrix) Type() TxType {
	switch {
	case !fuzzyZero(m.M13) || !fuzzyZero(m.M23) || !fuzzyZero(m.M33-1):
		return TxProject
	case !fuzzyZero(m.M12) || !fuzzyZero(m.M21):
		if fuzzyZero(m.M11*m.M12 + m.M21*m.M22) {
			return TxRotate
		}
		return TxShear
	case !fuzzyZero(m.M11-1) || !fuzzyZero(m.M22-1):
		return TxScale
	case !fuzzyZero(m.DX) || !fuzzyZero(m.DY):
		return TxTranslate
	default:
		return TxNone
	}
}
