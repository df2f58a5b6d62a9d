package dust

import (
	_ "embed"
)

//go:embed shaders/points.wgsl
var pointsShaderCode string
