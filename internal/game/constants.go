package game

// Player
const (
	PlayerSize        = 30.0
	PlayerSpeed       = 5.0  // units per frame
	PlayerSpawnOffset = 50.0 // distance of the spawn point above the bottom edge
	StartLives        = 3
)

// Bullets
const (
	BulletWidth  = 4.0
	BulletHeight = 10.0
	BulletSpeed  = 8.0
)

// Enemies
const (
	EnemySize          = 30.0
	EnemySpawnY        = -40.0
	EnemyMinSpeed      = 2.0
	EnemyMaxSpeed      = 5.0
	EnemySpawnChance   = 0.02 // per frame
	EnemyDespawnMargin = 50.0 // below the bottom edge
	EnemyHealth        = 1
)

// Particles
const (
	ParticleCount    = 8
	ParticleLife     = 30 // frames
	ParticleMaxSpeed = 4.0
	ParticleMinSize  = 1.0
	ParticleMaxSize  = 4.0
	ParticleDecay    = 0.95
)

// Starfield
const (
	StarCount    = 100
	StarMinSpeed = 1.0
	StarMaxSpeed = 3.0
	StarMaxSize  = 2.0
	StarResetY   = -5.0
)

// Scoring
const (
	KillScore = 10
)

// Colors (must match the palette the renderer draws with)
const (
	ColorPlayer Color = 0x00ffff
	ColorEnemy  Color = 0xff0080
	ColorBullet Color = 0xffff00
	ColorStar   Color = 0xffffff
)
