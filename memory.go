package attnbench

// Theoretical memory and arithmetic model for the attention kernels.
// Everything here is analytic, derived from tensor shapes alone; it never
// reads measured data and stays valid for arbitrarily large sequence
// lengths (all byte math is int64 so the S² term cannot overflow for any
// realistic shape).

// MemoryPoint is the projected footprint at one sequence length.
type MemoryPoint struct {
	SeqLen     int
	StandardMB float64 // Q,K,V,O tensors plus the S×S attention matrix
	FlashMB    float64 // Q,K,V,O tensors only
}

// MemoryProjection contrasts standard O(S²) attention with the flash-style
// O(S) formulation across a sweep of sequence lengths.
type MemoryProjection struct {
	Shape  SliceConfig
	Points []MemoryPoint
}

// QKVBytes returns the footprint of the four B×H×S×D tensors (Q, K, V, O)
// at BytesPerElement bytes each.
func QKVBytes(shape SliceConfig, seqLen int) int64 {
	b := int64(shape.BatchSize)
	h := int64(shape.NumHeads)
	s := int64(seqLen)
	d := int64(shape.HeadDim)
	return 4 * b * h * s * d * BytesPerElement
}

// AttentionMatrixBytes returns the footprint of the B×H×S×S score matrix
// that standard attention materializes.
func AttentionMatrixBytes(shape SliceConfig, seqLen int) int64 {
	b := int64(shape.BatchSize)
	h := int64(shape.NumHeads)
	s := int64(seqLen)
	return b * h * s * s * BytesPerElement
}

// ProjectMemory computes the standard and flash footprint curves for the
// given sequence lengths and shape.
func ProjectMemory(seqLens []int, shape SliceConfig) MemoryProjection {
	points := make([]MemoryPoint, 0, len(seqLens))
	for _, s := range seqLens {
		qkv := QKVBytes(shape, s)
		attn := AttentionMatrixBytes(shape, s)
		points = append(points, MemoryPoint{
			SeqLen:     s,
			StandardMB: float64(qkv+attn) / BytesPerMB,
			FlashMB:    float64(qkv) / BytesPerMB,
		})
	}
	return MemoryProjection{Shape: shape, Points: points}
}

// AttentionFLOPs counts the floating-point operations of one attention
// pass: the QKᵀ and PV matmuls, 2·B·H·S²·D multiply-adds each.
func AttentionFLOPs(shape SliceConfig, seqLen int) float64 {
	b := float64(shape.BatchSize)
	h := float64(shape.NumHeads)
	s := float64(seqLen)
	d := float64(shape.HeadDim)
	return 2 * b * h * s * s * d
}

// ArithmeticIntensity returns FLOPs per byte moved, counting Q, K, V reads
// and the O write.
func ArithmeticIntensity(shape SliceConfig, seqLen int) float64 {
	bytes := float64(QKVBytes(shape, seqLen)) // Q+K+V reads plus O write
	if bytes == 0 {
		return 0
	}
	return AttentionFLOPs(shape, seqLen) / bytes
}

// IsMemoryBound reports whether a configuration's arithmetic intensity
// falls below the roofline knee, meaning bandwidth rather than compute
// limits the kernel.
func IsMemoryBound(shape SliceConfig, seqLen int) bool {
	return ArithmeticIntensity(shape, seqLen) < MemoryBoundThreshold
}
