// Package voxorient provides the discrete orientation algebra for
// axis-aligned voxel content: cube rotations, axis flips, and the
// face-local coordinate remapping a mesher or occlusion engine needs when a
// block is rotated or mirrored.
//
// # Features
//
//   - Face: the six outward normals of an axis-aligned cube
//   - Flip: independent per-axis reflection
//   - Rotation: the 24 proper rotations of a cube
//   - Orientation: a Rotation composed with a Flip, 192 representable values
//   - CoordMap: face-local UV remapping for textured faces
//   - A single packed byte per block: 5 bits Rotation, 3 bits Flip
//
// # Quick Start
//
// Compose a user-driven quarter turn onto a block's stored Orientation:
//
//	o := voxorient.IdentityOrientation
//	turn, ok := voxorient.FromUpAndForward(voxorient.PosX, voxorient.PosY)
//	if !ok {
//	    log.Fatal("degenerate basis")
//	}
//	o = o.Reorient(voxorient.NewOrientation(turn, voxorient.NoFlip))
//
//	packed := o.Pack()
//	restored := voxorient.UnpackOrientation(packed)
//
// # Meshing a block
//
// A mesher transforms each cube vertex and remaps textured-face UVs:
//
//	for _, vert := range cubeVertices {
//	    world := o.Transform(vert)
//	    _ = world
//	}
//	if o.Flip.ReverseIndices() {
//	    reverseTriangleWinding(indices)
//	}
//	mappedUV := voxorient.MapFaceCoord(o, voxorient.PosY, localUV)
//
// # Predefined values
//
//	voxorient.IdentityRotation
//	voxorient.IdentityOrientation
//	voxorient.NoFlip
//	voxorient.IdentityCoordMap
package voxorient
