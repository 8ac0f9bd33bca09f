package main

import (
	"github.com/kestrelgfx/microraster/mesh"
	"github.com/kestrelgfx/microraster/raster"
)

// cubeMesh is a unit cube with per-face vertices so each face keeps a flat
// normal; 24 vertices, 12 triangles, 2 per face.
var cubeMesh = &mesh.Mesh{
	Vertices: []mesh.Vertex{
		// +X
		{Pos: v(1, -1, -1), N: v(1, 0, 0), UV: uv(0, 0)},
		{Pos: v(1, 1, -1), N: v(1, 0, 0), UV: uv(1, 0)},
		{Pos: v(1, 1, 1), N: v(1, 0, 0), UV: uv(1, 1)},
		{Pos: v(1, -1, 1), N: v(1, 0, 0), UV: uv(0, 1)},
		// -X
		{Pos: v(-1, -1, 1), N: v(-1, 0, 0), UV: uv(0, 0)},
		{Pos: v(-1, 1, 1), N: v(-1, 0, 0), UV: uv(1, 0)},
		{Pos: v(-1, 1, -1), N: v(-1, 0, 0), UV: uv(1, 1)},
		{Pos: v(-1, -1, -1), N: v(-1, 0, 0), UV: uv(0, 1)},
		// +Y
		{Pos: v(-1, 1, -1), N: v(0, 1, 0), UV: uv(0, 0)},
		{Pos: v(-1, 1, 1), N: v(0, 1, 0), UV: uv(1, 0)},
		{Pos: v(1, 1, 1), N: v(0, 1, 0), UV: uv(1, 1)},
		{Pos: v(1, 1, -1), N: v(0, 1, 0), UV: uv(0, 1)},
		// -Y
		{Pos: v(-1, -1, 1), N: v(0, -1, 0), UV: uv(0, 0)},
		{Pos: v(-1, -1, -1), N: v(0, -1, 0), UV: uv(1, 0)},
		{Pos: v(1, -1, -1), N: v(0, -1, 0), UV: uv(1, 1)},
		{Pos: v(1, -1, 1), N: v(0, -1, 0), UV: uv(0, 1)},
		// +Z
		{Pos: v(1, -1, 1), N: v(0, 0, 1), UV: uv(0, 0)},
		{Pos: v(1, 1, 1), N: v(0, 0, 1), UV: uv(1, 0)},
		{Pos: v(-1, 1, 1), N: v(0, 0, 1), UV: uv(1, 1)},
		{Pos: v(-1, -1, 1), N: v(0, 0, 1), UV: uv(0, 1)},
		// -Z
		{Pos: v(-1, -1, -1), N: v(0, 0, -1), UV: uv(0, 0)},
		{Pos: v(-1, 1, -1), N: v(0, 0, -1), UV: uv(1, 0)},
		{Pos: v(1, 1, -1), N: v(0, 0, -1), UV: uv(1, 1)},
		{Pos: v(1, -1, -1), N: v(0, 0, -1), UV: uv(0, 1)},
	},
	Indices: []uint16{
		0, 1, 2, 0, 2, 3, // +X
		4, 5, 6, 4, 6, 7, // -X
		8, 9, 10, 8, 10, 11, // +Y
		12, 13, 14, 12, 14, 15, // -Y
		16, 17, 18, 16, 18, 19, // +Z
		20, 21, 22, 20, 22, 23, // -Z
	},
}

func v(x, y, z float32) raster.Vec3 { return raster.Vec3{X: x, Y: y, Z: z} }
func uv(u, w float32) raster.Vec2   { return raster.Vec2{X: u, Y: w} }
