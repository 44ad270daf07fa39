package preset

// GetExampleJSON returns a sample manifest that renders a vertical and a
// horizontal light-to-mid gray gradient.
func GetExampleJSON() string {
	return `{
  "meta": {
    "name": "Gray ramps",
    "version": "1.0",
    "author": "GoGradient",
    "description": "Background strips for a page header (vertical) and a toolbar (horizontal)."
  },
  "defaults": {
    "start": "230,230,230",
    "stop": "180,180,180",
    "compression": "best"
  },
  "gradients": [
    { "output": "vgradient.png", "axis": "vertical", "extent": 150 },
    { "output": "hgradient.png", "axis": "horizontal", "extent": 600 }
  ]
}
`
}
