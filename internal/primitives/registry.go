package primitives

import (
	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MaxLights is the number of point lights the lit shader evaluates.
const MaxLights = 4

const (
	sphereRings    = 24
	sphereSlices   = 16
	cylinderSlices = 16
	defaultRange   = 80
)

// Registry owns the primitive meshes, one shared material and the lit shader. Meshes are
// created on first use so GPU resources are allocated after the window exists.
type Registry struct {
	meshes map[Kind]rl.Mesh
	mtl    rl.Material
	ready  bool

	locViewPos    int32
	locAmbient    int32
	locLightPos   int32
	locLightColor int32
	locLightRange int32
	locEmissive   int32

	viewPos  mgl32.Vec3
	ambient  [4]float32
	lightPos [MaxLights * 3]float32
	lightCol [MaxLights * 3]float32
	lightRng [MaxLights]float32
}

// NewRegistry returns a registry lit by ambient (colour scaled by intensity) and up to
// MaxLights point lights; extra lights are ignored.
func NewRegistry(ar, ag, ab uint8, ambientIntensity float32, lights []Light) *Registry {
	r := &Registry{meshes: make(map[Kind]rl.Mesh)}
	r.ambient = [4]float32{
		float32(ar) / 255 * ambientIntensity,
		float32(ag) / 255 * ambientIntensity,
		float32(ab) / 255 * ambientIntensity,
		1,
	}
	for i, l := range lights {
		if i == MaxLights {
			break
		}
		rng := l.Range
		if rng <= 0 {
			rng = defaultRange
		}
		copy(r.lightPos[i*3:], l.Position[:])
		r.lightCol[i*3] = float32(l.R) / 255 * l.Intensity
		r.lightCol[i*3+1] = float32(l.G) / 255 * l.Intensity
		r.lightCol[i*3+2] = float32(l.B) / 255 * l.Intensity
		r.lightRng[i] = rng
	}
	return r
}

// SetView sets the camera position used for specular highlights. Call once per frame
// before drawing.
func (r *Registry) SetView(viewPos mgl32.Vec3) {
	r.viewPos = viewPos
}

func (r *Registry) ensureShader() {
	if r.ready {
		return
	}
	r.ready = true
	r.mtl = rl.LoadMaterialDefault()
	shader := rl.LoadShaderFromMemory(litVS, litFS)
	if !rl.IsShaderValid(shader) {
		// Unlit default shader; colours still draw.
		r.locViewPos, r.locAmbient, r.locLightPos = -1, -1, -1
		r.locLightColor, r.locLightRange, r.locEmissive = -1, -1, -1
		return
	}
	r.mtl.Shader = shader
	r.locViewPos = rl.GetShaderLocation(shader, "viewPos")
	r.locAmbient = rl.GetShaderLocation(shader, "ambient")
	r.locLightPos = rl.GetShaderLocation(shader, "lightPos")
	r.locLightColor = rl.GetShaderLocation(shader, "lightColor")
	r.locLightRange = rl.GetShaderLocation(shader, "lightRange")
	r.locEmissive = rl.GetShaderLocation(shader, "emissive")
}

func (r *Registry) mesh(k Kind) (rl.Mesh, bool) {
	if m, ok := r.meshes[k]; ok {
		return m, true
	}
	var m rl.Mesh
	switch k {
	case Cube:
		m = rl.GenMeshCube(1, 1, 1)
	case Sphere:
		m = rl.GenMeshSphere(0.5, sphereRings, sphereSlices)
	case Cylinder:
		m = rl.GenMeshCylinder(0.5, 1, cylinderSlices)
	default:
		return rl.Mesh{}, false
	}
	r.meshes[k] = m
	return m, true
}

// centre shifts meshes whose origin is not their centre; raylib cylinders sit on Y=0.
func centre(k Kind) mgl32.Vec3 {
	if k == Cylinder {
		return mgl32.Vec3{0, -0.5, 0}
	}
	return mgl32.Vec3{}
}

func (r *Registry) setUniforms(emissive float32) {
	shader := r.mtl.Shader
	if r.locViewPos >= 0 {
		v := [3]float32{r.viewPos[0], r.viewPos[1], r.viewPos[2]}
		rl.SetShaderValueV(shader, r.locViewPos, v[:], rl.ShaderUniformVec3, 1)
	}
	if r.locAmbient >= 0 {
		a := r.ambient
		rl.SetShaderValueV(shader, r.locAmbient, a[:], rl.ShaderUniformVec4, 1)
	}
	if r.locLightPos >= 0 {
		p := r.lightPos
		rl.SetShaderValueV(shader, r.locLightPos, p[:], rl.ShaderUniformVec3, MaxLights)
	}
	if r.locLightColor >= 0 {
		c := r.lightCol
		rl.SetShaderValueV(shader, r.locLightColor, c[:], rl.ShaderUniformVec3, MaxLights)
	}
	if r.locLightRange >= 0 {
		g := r.lightRng
		rl.SetShaderValueV(shader, r.locLightRange, g[:], rl.ShaderUniformFloat, MaxLights)
	}
	if r.locEmissive >= 0 {
		rl.SetShaderValue(shader, r.locEmissive, []float32{emissive}, rl.ShaderUniformFloat)
	}
}

// Draw draws one instance of k. Must be called between BeginMode3D and EndMode3D.
// Unknown kinds are skipped.
func (r *Registry) Draw(k Kind, t Transform, m Material) {
	r.ensureShader()
	mesh, ok := r.mesh(k)
	if !ok {
		return
	}
	if albedo := r.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.NewColor(m.R, m.G, m.B, m.A)
	}
	r.setUniforms(m.Emissive)
	rl.DrawMesh(mesh, r.mtl, toMatrix(t.Model(centre(k))))
}

// Unload frees the GPU resources. The registry rebuilds them on the next Draw.
func (r *Registry) Unload() {
	for k, m := range r.meshes {
		rl.UnloadMesh(&m)
		delete(r.meshes, k)
	}
	if r.ready {
		rl.UnloadMaterial(r.mtl)
		r.ready = false
	}
}

func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	// litFS: ambient plus point lights with a squared linear falloff, Blinn-Phong specular,
	// and an emissive mix toward the unlit tint.
	litFS = `#version 330
#define MAX_LIGHTS 4
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec4 ambient;
uniform vec3 lightPos[MAX_LIGHTS];
uniform vec3 lightColor[MAX_LIGHTS];
uniform float lightRange[MAX_LIGHTS];
uniform float emissive;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(viewPos - fragPosition);
  vec3 lit = ambient.rgb * tint.rgb;
  for (int i = 0; i < MAX_LIGHTS; i++) {
    if (lightRange[i] <= 0.0) continue;
    vec3 toLight = lightPos[i] - fragPosition;
    float d = length(toLight);
    float atten = clamp(1.0 - d / lightRange[i], 0.0, 1.0);
    atten *= atten;
    vec3 L = toLight / max(d, 0.0001);
    float NdotL = max(dot(N, L), 0.0);
    vec3 H = normalize(L + V);
    float spec = pow(max(dot(N, H), 0.0), 32.0) * 0.25;
    lit += (tint.rgb * NdotL + spec) * lightColor[i] * atten;
  }
  finalColor = vec4(mix(lit, tint.rgb, clamp(emissive, 0.0, 1.0)), tint.a);
}
`
)
