package blend

// Func composes src onto dst in place. src must hold at least len(dst)
// pixels. constAlpha is in [0, 255].
type Func func(dst, src []uint32, constAlpha uint32)

// SolidFunc composes a single color onto every pixel of dst.
type SolidFunc func(dst []uint32, color, constAlpha uint32)

// Table maps every Mode to its solid and array composition functions.
//
// Tables are plain values: once built they are never modified, so one
// table may be shared by any number of goroutines.
type Table struct {
	Solid [ModeCount]SolidFunc
	Array [ModeCount]Func
}

var scalarTable = Table{
	Solid: [ModeCount]SolidFunc{
		SourceOver:                 solidSourceOver,
		DestinationOver:            solidDestinationOver,
		Clear:                      solidClear,
		Source:                     solidSource,
		Destination:                solidDestination,
		SourceIn:                   solidSourceIn,
		DestinationIn:              solidDestinationIn,
		SourceOut:                  solidSourceOut,
		DestinationOut:             solidDestinationOut,
		SourceAtop:                 solidSourceAtop,
		DestinationAtop:            solidDestinationAtop,
		Xor:                        solidXor,
		Plus:                       solidPlus,
		Multiply:                   separableSolid(multiplyOp),
		Screen:                     separableSolid(screenOp),
		Overlay:                    separableSolid(overlayOp),
		Darken:                     separableSolid(darkenOp),
		Lighten:                    separableSolid(lightenOp),
		ColorDodge:                 separableSolid(colorDodgeOp),
		ColorBurn:                  separableSolid(colorBurnOp),
		HardLight:                  separableSolid(hardLightOp),
		SoftLight:                  separableSolid(softLightOp),
		Difference:                 separableSolid(differenceOp),
		Exclusion:                  separableSolid(exclusionOp),
		SourceOrDestination:        solidSourceOrDestination,
		SourceAndDestination:       solidSourceAndDestination,
		SourceXorDestination:       solidSourceXorDestination,
		NotSourceAndNotDestination: solidNotSourceAndNotDestination,
		NotSourceOrNotDestination:  solidNotSourceOrNotDestination,
		NotSourceXorDestination:    solidNotSourceXorDestination,
		NotSource:                  solidNotSource,
		NotSourceAndDestination:    solidNotSourceAndDestination,
		SourceAndNotDestination:    solidSourceAndNotDestination,
		NotSourceOrDestination:     solidNotSourceOrDestination,
		SourceOrNotDestination:     solidSourceOrNotDestination,
		ClearDestination:           solidClearDestination,
		SetDestination:             solidSetDestination,
		NotDestination:             solidNotDestination,
	},
	Array: [ModeCount]Func{
		SourceOver:                 compSourceOver,
		DestinationOver:            compDestinationOver,
		Clear:                      compClear,
		Source:                     compSource,
		Destination:                compDestination,
		SourceIn:                   compSourceIn,
		DestinationIn:              compDestinationIn,
		SourceOut:                  compSourceOut,
		DestinationOut:             compDestinationOut,
		SourceAtop:                 compSourceAtop,
		DestinationAtop:            compDestinationAtop,
		Xor:                        compXor,
		Plus:                       compPlus,
		Multiply:                   separableArray(multiplyOp),
		Screen:                     separableArray(screenOp),
		Overlay:                    separableArray(overlayOp),
		Darken:                     separableArray(darkenOp),
		Lighten:                    separableArray(lightenOp),
		ColorDodge:                 separableArray(colorDodgeOp),
		ColorBurn:                  separableArray(colorBurnOp),
		HardLight:                  separableArray(hardLightOp),
		SoftLight:                  separableArray(softLightOp),
		Difference:                 separableArray(differenceOp),
		Exclusion:                  separableArray(exclusionOp),
		SourceOrDestination:        compSourceOrDestination,
		SourceAndDestination:       compSourceAndDestination,
		SourceXorDestination:       compSourceXorDestination,
		NotSourceAndNotDestination: compNotSourceAndNotDestination,
		NotSourceOrNotDestination:  compNotSourceOrNotDestination,
		NotSourceXorDestination:    compNotSourceXorDestination,
		NotSource:                  compNotSource,
		NotSourceAndDestination:    compNotSourceAndDestination,
		SourceAndNotDestination:    compSourceAndNotDestination,
		NotSourceOrDestination:     compNotSourceOrDestination,
		SourceOrNotDestination:     compSourceOrNotDestination,
		ClearDestination:           compClearDestination,
		SetDestination:             compSetDestination,
		NotDestination:             compNotDestination,
	},
}

// Scalar returns the reference table. Every accelerated kernel must match
// it bit for bit.
func Scalar() *Table {
	t := scalarTable
	return &t
}

// Wide returns the reference table with the 16-lane kernels installed for
// the modes that have one.
func Wide() *Table {
	t := scalarTable
	t.Solid[SourceOver] = wideSolid(sourceOverBatch, solidSourceOver)
	t.Array[SourceOver] = wideArray(sourceOverBatch, compSourceOver)
	t.Solid[Source] = wideSolid(solidSourceBatch, solidSource)
	t.Array[Source] = wideArray(sourceBatch, compSource)
	t.Solid[DestinationOver] = wideSolid(destinationOverBatch, solidDestinationOver)
	t.Array[DestinationOver] = wideArray(destinationOverBatch, compDestinationOver)
	t.Solid[Plus] = wideSolid(plusBatch, solidPlus)
	t.Array[Plus] = wideArray(plusBatch, compPlus)
	t.Solid[Multiply] = wideSolid(multiplyBatch, t.Solid[Multiply])
	t.Array[Multiply] = wideArray(multiplyBatch, t.Array[Multiply])
	t.Solid[Screen] = wideSolid(screenBatch, t.Solid[Screen])
	t.Array[Screen] = wideArray(screenBatch, t.Array[Screen])
	return &t
}
