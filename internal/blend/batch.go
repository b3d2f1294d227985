package blend

import "github.com/gogpu/drawhelper/internal/wide"

// BatchFunc blends 16 pixels held in b. ca is the constant alpha splatted
// across lanes. Source channels are read only; the result replaces the
// destination channels.
type BatchFunc func(b *wide.BatchState, ca wide.U16x16)

// wideArray wraps a batch kernel as an array Func: full batches of 16 go
// through kernel, the tail through the scalar function.
func wideArray(kernel BatchFunc, tail Func) Func {
	return func(dst, src []uint32, constAlpha uint32) {
		src = src[:len(dst)]
		n := len(dst) &^ (wide.Lanes - 1)
		ca := wide.SplatU16(uint16(constAlpha))

		var b wide.BatchState
		for i := 0; i < n; i += wide.Lanes {
			b.LoadSrc(src[i:])
			b.LoadDst(dst[i:])
			kernel(&b, ca)
			b.StoreDst(dst[i:])
		}
		if n < len(dst) {
			tail(dst[n:], src[n:], constAlpha)
		}
	}
}

// wideSolid wraps a batch kernel as a SolidFunc.
func wideSolid(kernel BatchFunc, tail SolidFunc) SolidFunc {
	return func(dst []uint32, color, constAlpha uint32) {
		n := len(dst) &^ (wide.Lanes - 1)
		ca := wide.SplatU16(uint16(constAlpha))

		var b wide.BatchState
		b.SplatSrc(color)
		for i := 0; i < n; i += wide.Lanes {
			b.LoadDst(dst[i:])
			kernel(&b, ca)
			b.StoreDst(dst[i:])
		}
		if n < len(dst) {
			tail(dst[n:], color, constAlpha)
		}
	}
}

func full(ca wide.U16x16) bool {
	return ca[0] == 255
}

// coverage interpolates the blended channels r toward the destination
// channels d by ca.
func coverage(r, d *wide.U16x16, ca wide.U16x16) {
	if !full(ca) {
		*r = r.Lerp255(ca, *d, ca.Inv())
	}
}

// sourceOverBatch: Result = S*ca + D*(1 - Sa*ca)
func sourceOverBatch(b *wide.BatchState, ca wide.U16x16) {
	sr, sg, sb, sa := b.SR, b.SG, b.SB, b.SA
	if !full(ca) {
		sr, sg, sb, sa = sr.MulDiv255(ca), sg.MulDiv255(ca), sb.MulDiv255(ca), sa.MulDiv255(ca)
	}
	inv := sa.Inv()
	b.DR = sr.Add(b.DR.MulDiv255(inv))
	b.DG = sg.Add(b.DG.MulDiv255(inv))
	b.DB = sb.Add(b.DB.MulDiv255(inv))
	b.DA = sa.Add(b.DA.MulDiv255(inv))
}

// sourceBatch: Result = S*ca + D*(1-ca), rounded once.
func sourceBatch(b *wide.BatchState, ca wide.U16x16) {
	if full(ca) {
		b.DR, b.DG, b.DB, b.DA = b.SR, b.SG, b.SB, b.SA
		return
	}
	cia := ca.Inv()
	b.DR = b.SR.Lerp255(ca, b.DR, cia)
	b.DG = b.SG.Lerp255(ca, b.DG, cia)
	b.DB = b.SB.Lerp255(ca, b.DB, cia)
	b.DA = b.SA.Lerp255(ca, b.DA, cia)
}

// solidSourceBatch: Result = round(S*ca) + round(D*(1-ca)), matching the
// solid scalar form which scales the color once up front.
func solidSourceBatch(b *wide.BatchState, ca wide.U16x16) {
	if full(ca) {
		b.DR, b.DG, b.DB, b.DA = b.SR, b.SG, b.SB, b.SA
		return
	}
	cia := ca.Inv()
	b.DR = b.SR.MulDiv255(ca).Add(b.DR.MulDiv255(cia))
	b.DG = b.SG.MulDiv255(ca).Add(b.DG.MulDiv255(cia))
	b.DB = b.SB.MulDiv255(ca).Add(b.DB.MulDiv255(cia))
	b.DA = b.SA.MulDiv255(ca).Add(b.DA.MulDiv255(cia))
}

// destinationOverBatch: Result = D + S*ca*(1-Da)
func destinationOverBatch(b *wide.BatchState, ca wide.U16x16) {
	sr, sg, sb, sa := b.SR, b.SG, b.SB, b.SA
	if !full(ca) {
		sr, sg, sb, sa = sr.MulDiv255(ca), sg.MulDiv255(ca), sb.MulDiv255(ca), sa.MulDiv255(ca)
	}
	inv := b.DA.Inv()
	b.DR = b.DR.Add(sr.MulDiv255(inv))
	b.DG = b.DG.Add(sg.MulDiv255(inv))
	b.DB = b.DB.Add(sb.MulDiv255(inv))
	b.DA = b.DA.Add(sa.MulDiv255(inv))
}

// plusBatch: Result = min(S + D, 255)
func plusBatch(b *wide.BatchState, ca wide.U16x16) {
	r := b.SR.Add(b.DR).Clamp(255)
	g := b.SG.Add(b.DG).Clamp(255)
	bl := b.SB.Add(b.DB).Clamp(255)
	a := b.SA.Add(b.DA).Clamp(255)
	coverage(&r, &b.DR, ca)
	coverage(&g, &b.DG, ca)
	coverage(&bl, &b.DB, ca)
	coverage(&a, &b.DA, ca)
	b.DR, b.DG, b.DB, b.DA = r, g, bl, a
}

// multiplyBatch: Dca' = Sca*Dca + Sca*(1-Da) + Dca*(1-Sa)
func multiplyBatch(b *wide.BatchState, ca wide.U16x16) {
	sia, dia := b.SA.Inv(), b.DA.Inv()
	mul := func(s, d wide.U16x16) wide.U16x16 {
		return s.Mul(d).Add(s.Mul(dia)).Add(d.Mul(sia)).Div255()
	}
	r := mul(b.SR, b.DR)
	g := mul(b.SG, b.DG)
	bl := mul(b.SB, b.DB)
	a := b.DA.MixAlpha(b.SA)
	coverage(&r, &b.DR, ca)
	coverage(&g, &b.DG, ca)
	coverage(&bl, &b.DB, ca)
	coverage(&a, &b.DA, ca)
	b.DR, b.DG, b.DB, b.DA = r, g, bl, a
}

// screenBatch: Dca' = Sca + Dca - Sca*Dca
func screenBatch(b *wide.BatchState, ca wide.U16x16) {
	scr := func(s, d wide.U16x16) wide.U16x16 {
		return s.Inv().Mul(d.Inv()).Div255().Inv()
	}
	r := scr(b.SR, b.DR)
	g := scr(b.SG, b.DG)
	bl := scr(b.SB, b.DB)
	a := b.DA.MixAlpha(b.SA)
	coverage(&r, &b.DR, ca)
	coverage(&g, &b.DG, ca)
	coverage(&bl, &b.DB, ca)
	coverage(&a, &b.DA, ca)
	b.DR, b.DG, b.DB, b.DA = r, g, bl, a
}
