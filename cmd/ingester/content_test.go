package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildProductContent(t *testing.T) {
	product := seedProduct{
		ID:          1,
		Title:       "Red Running Shoes",
		Description: "Lightweight running shoes with breathable mesh.",
		Price:       json.Number("59.99"),
		Category:    "footwear",
		Brand:       "Acme",
	}

	got := buildProductContent(product)

	expected := "Product: Red Running Shoes\n" +
		"Brand: Acme\n" +
		"Category: footwear\n" +
		"Description: Lightweight running shoes with breathable mesh.\n" +
		"Price: $59.99"
	assert.Equal(t, expected, got)
}

func TestBuildMaterialContent(t *testing.T) {
	material := seedMaterial{
		EANumber:    "EA-10452",
		Name:        "Cable Conduit 25mm",
		Description: "Rigid PVC conduit for surface mounting.",
		Category:    "conduits",
		Specs: map[string]any{
			"material": "PVC",
			"diameter": "25mm",
			"length":   "3m",
		},
	}

	got := buildMaterialContent(material)

	// spec keys render sorted so the embedded blob is deterministic
	expected := "Material: Cable Conduit 25mm\n" +
		"Description: Rigid PVC conduit for surface mounting.\n" +
		"Category: conduits\n" +
		"Specs: diameter: 25mm, length: 3m, material: PVC"
	assert.Equal(t, expected, got)
}

func TestBuildMaterialContent_NoSpecs(t *testing.T) {
	material := seedMaterial{
		Name:        "Wall Socket",
		Description: "Standard grounded socket.",
		Category:    "sockets",
	}

	got := buildMaterialContent(material)

	assert.Equal(t,
		"Material: Wall Socket\nDescription: Standard grounded socket.\nCategory: sockets\nSpecs: ",
		got)
}
