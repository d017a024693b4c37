package geometry

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// bvhRef points either at another node or at a shape, both by index
type bvhRef struct {
	index int
	leaf  bool // index is into BVH.shapes rather than BVH.nodes
}

// bvhNode is an interior node of the hierarchy
type bvhNode struct {
	box         core.AABB
	left, right bvhRef
}

// BVH is a Bounding Volume Hierarchy over a fixed set of shapes. Nodes and shapes
// live in flat slices and reference each other by index. The root is nodes[0].
type BVH struct {
	nodes  []bvhNode
	shapes []Shape
}

// bvhItem pairs a shape with the t=0 box used to order it along the split axis
type bvhItem struct {
	shape Shape
	key   core.AABB
}

// NewBVH constructs a BVH from a slice of shapes. Every shape must report a
// bounding box; node boxes cover the interval [time0, time1]. random picks
// the split axis at each node.
func NewBVH(shapes []Shape, time0, time1 float64, random *rand.Rand) (*BVH, error) {
	if len(shapes) == 0 {
		return nil, ErrEmptyBVH
	}

	items := make([]bvhItem, len(shapes))
	for i, shape := range shapes {
		key, ok := shape.BoundingBox(0, 0)
		if !ok {
			return nil, fmt.Errorf("build BVH: shape %d (%T): %w", i, shape, ErrNoBoundingBox)
		}
		items[i] = bvhItem{shape: shape, key: key}
	}

	b := &builder{
		time0:  time0,
		time1:  time1,
		random: random,
		items:  items,
		bvh:    &BVH{nodes: make([]bvhNode, 0, len(shapes))},
	}
	if _, err := b.build(0, len(items)); err != nil {
		return nil, err
	}

	b.bvh.shapes = make([]Shape, len(items))
	for i, item := range items {
		b.bvh.shapes[i] = item.shape
	}
	return b.bvh, nil
}

type builder struct {
	time0, time1 float64
	random       *rand.Rand
	items        []bvhItem
	bvh          *BVH
}

// build creates the node covering items[start:end] and returns its index
func (b *builder) build(start, end int) (int, error) {
	axis := b.random.Intn(3)

	index := len(b.bvh.nodes)
	b.bvh.nodes = append(b.bvh.nodes, bvhNode{})

	var left, right bvhRef
	switch count := end - start; count {
	case 1:
		// A single shape sits on both sides
		left = bvhRef{index: start, leaf: true}
		right = left
	case 2:
		left = bvhRef{index: start, leaf: true}
		right = bvhRef{index: start + 1, leaf: true}
		if b.items[start].key.Min.Axis(axis) >= b.items[start+1].key.Min.Axis(axis) {
			left, right = right, left
		}
	default:
		span := b.items[start:end]
		sort.SliceStable(span, func(i, j int) bool {
			return span[i].key.Min.Axis(axis) < span[j].key.Min.Axis(axis)
		})

		mid := start + count/2
		leftIndex, err := b.build(start, mid)
		if err != nil {
			return 0, err
		}
		rightIndex, err := b.build(mid, end)
		if err != nil {
			return 0, err
		}
		left = bvhRef{index: leftIndex}
		right = bvhRef{index: rightIndex}
	}

	leftBox, err := b.box(left)
	if err != nil {
		return 0, err
	}
	rightBox, err := b.box(right)
	if err != nil {
		return 0, err
	}

	b.bvh.nodes[index] = bvhNode{
		box:   core.SurroundingBox(leftBox, rightBox),
		left:  left,
		right: right,
	}
	return index, nil
}

// box returns the time-ranged box of a child
func (b *builder) box(ref bvhRef) (core.AABB, error) {
	if !ref.leaf {
		return b.bvh.nodes[ref.index].box, nil
	}
	shape := b.items[ref.index].shape
	box, ok := shape.BoundingBox(b.time0, b.time1)
	if !ok {
		return core.AABB{}, fmt.Errorf("build BVH: shape %T over [%g, %g]: %w", shape, b.time0, b.time1, ErrNoBoundingBox)
	}
	return box, nil
}

// Hit tests if a ray intersects any shape in the BVH
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	return bvh.hitNode(0, ray, tMin, tMax, random)
}

func (bvh *BVH) hitNode(index int, ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	node := &bvh.nodes[index]
	if _, _, ok := node.box.Hit(ray, tMin, tMax); !ok {
		return nil, false
	}

	leftHit, hitLeft := bvh.hitRef(node.left, ray, tMin, tMax, random)
	if node.right == node.left {
		return leftHit, hitLeft
	}

	// The right side only needs to beat the left hit
	rightMax := tMax
	if hitLeft {
		rightMax = leftHit.T
	}
	if rightHit, hitRight := bvh.hitRef(node.right, ray, tMin, rightMax, random); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

func (bvh *BVH) hitRef(ref bvhRef, ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	if ref.leaf {
		return bvh.shapes[ref.index].Hit(ray, tMin, tMax, random)
	}
	return bvh.hitNode(ref.index, ray, tMin, tMax, random)
}

// BoundingBox returns the root box fixed at construction; the time arguments are ignored
func (bvh *BVH) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return bvh.nodes[0].box, true
}

// Len returns the number of shapes in the hierarchy
func (bvh *BVH) Len() int {
	return len(bvh.shapes)
}

// Depth returns the number of nodes on the longest root-to-leaf path
func (bvh *BVH) Depth() int {
	return bvh.depth(bvhRef{index: 0})
}

func (bvh *BVH) depth(ref bvhRef) int {
	if ref.leaf {
		return 0
	}
	node := bvh.nodes[ref.index]
	return 1 + max(bvh.depth(node.left), bvh.depth(node.right))
}
