package main

import (
	"fmt"
	"log"

	"github.com/archgeo/polygonize/pkg/polygonize"
)

func main() {
	// Create a polygonizer with default options
	p := polygonize.New()

	// Feed it the edges of two touching 5x5 squares
	edges := []polygonize.Geometry{
		{Kind: polygonize.KindLineString, Coords: []polygonize.Coordinate{
			{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 5}, {X: 0, Y: 5}, {X: 0, Y: 0},
		}},
		{Kind: polygonize.KindLineString, Coords: []polygonize.Coordinate{
			{X: 5, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 0},
		}},
	}
	for _, g := range edges {
		if err := p.AddGeometry(g); err != nil {
			log.Fatal(err)
		}
	}

	// Extract the faces
	polys, err := p.Polygonize()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Polygons: %d\n", len(polys))
	for i, poly := range polys {
		fmt.Printf("  [%d] exterior vertices: %d, holes: %d\n", i, len(poly.Exterior), len(poly.Holes))
	}
}
