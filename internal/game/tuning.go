package game

import (
	"errors"
	"fmt"
)

// ErrInvalidTuning is returned when a Tuning value cannot drive a simulation.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds every gameplay constant. Speeds are in units per frame.
type Tuning struct {
	PlayerSize        float64 `toml:"player_size"`
	PlayerSpeed       float64 `toml:"player_speed"`
	PlayerSpawnOffset float64 `toml:"player_spawn_offset"`
	StartLives        int     `toml:"start_lives"`

	BulletWidth  float64 `toml:"bullet_width"`
	BulletHeight float64 `toml:"bullet_height"`
	BulletSpeed  float64 `toml:"bullet_speed"`

	EnemySize          float64 `toml:"enemy_size"`
	EnemySpawnY        float64 `toml:"enemy_spawn_y"`
	EnemyMinSpeed      float64 `toml:"enemy_min_speed"`
	EnemyMaxSpeed      float64 `toml:"enemy_max_speed"`
	EnemySpawnChance   float64 `toml:"enemy_spawn_chance"`
	EnemyDespawnMargin float64 `toml:"enemy_despawn_margin"`

	ParticleCount    int     `toml:"particle_count"`
	ParticleLife     int     `toml:"particle_life"`
	ParticleMaxSpeed float64 `toml:"particle_max_speed"`
	ParticleMinSize  float64 `toml:"particle_min_size"`
	ParticleMaxSize  float64 `toml:"particle_max_size"`
	ParticleDecay    float64 `toml:"particle_decay"`

	StarCount    int     `toml:"star_count"`
	StarMinSpeed float64 `toml:"star_min_speed"`
	StarMaxSpeed float64 `toml:"star_max_speed"`
	StarMaxSize  float64 `toml:"star_max_size"`

	KillScore int `toml:"kill_score"`
}

// DefaultTuning returns the stock arcade tuning.
func DefaultTuning() Tuning {
	return Tuning{
		PlayerSize:        PlayerSize,
		PlayerSpeed:       PlayerSpeed,
		PlayerSpawnOffset: PlayerSpawnOffset,
		StartLives:        StartLives,

		BulletWidth:  BulletWidth,
		BulletHeight: BulletHeight,
		BulletSpeed:  BulletSpeed,

		EnemySize:          EnemySize,
		EnemySpawnY:        EnemySpawnY,
		EnemyMinSpeed:      EnemyMinSpeed,
		EnemyMaxSpeed:      EnemyMaxSpeed,
		EnemySpawnChance:   EnemySpawnChance,
		EnemyDespawnMargin: EnemyDespawnMargin,

		ParticleCount:    ParticleCount,
		ParticleLife:     ParticleLife,
		ParticleMaxSpeed: ParticleMaxSpeed,
		ParticleMinSize:  ParticleMinSize,
		ParticleMaxSize:  ParticleMaxSize,
		ParticleDecay:    ParticleDecay,

		StarCount:    StarCount,
		StarMinSpeed: StarMinSpeed,
		StarMaxSpeed: StarMaxSpeed,
		StarMaxSize:  StarMaxSize,

		KillScore: KillScore,
	}
}

// Validate reports the first field that would break the simulation invariants.
func (t Tuning) Validate() error {
	switch {
	case t.PlayerSize <= 0:
		return fmt.Errorf("%w: player_size must be positive", ErrInvalidTuning)
	case t.PlayerSpawnOffset < 0:
		return fmt.Errorf("%w: player_spawn_offset must not be negative", ErrInvalidTuning)
	case t.PlayerSpeed < 0:
		return fmt.Errorf("%w: player_speed must not be negative", ErrInvalidTuning)
	case t.StartLives <= 0:
		return fmt.Errorf("%w: start_lives must be positive", ErrInvalidTuning)
	case t.BulletWidth <= 0 || t.BulletHeight <= 0:
		return fmt.Errorf("%w: bullet size must be positive", ErrInvalidTuning)
	case t.BulletSpeed <= 0:
		return fmt.Errorf("%w: bullet_speed must be positive", ErrInvalidTuning)
	case t.EnemySize <= 0:
		return fmt.Errorf("%w: enemy_size must be positive", ErrInvalidTuning)
	case t.EnemyMinSpeed <= 0 || t.EnemyMaxSpeed < t.EnemyMinSpeed:
		return fmt.Errorf("%w: enemy speed range [%g, %g) is empty or non-positive",
			ErrInvalidTuning, t.EnemyMinSpeed, t.EnemyMaxSpeed)
	case t.EnemySpawnChance < 0 || t.EnemySpawnChance > 1:
		return fmt.Errorf("%w: enemy_spawn_chance must be within [0, 1]", ErrInvalidTuning)
	case t.EnemyDespawnMargin < 0:
		return fmt.Errorf("%w: enemy_despawn_margin must not be negative", ErrInvalidTuning)
	case t.ParticleCount < 0:
		return fmt.Errorf("%w: particle_count must not be negative", ErrInvalidTuning)
	case t.ParticleLife <= 0:
		return fmt.Errorf("%w: particle_life must be positive", ErrInvalidTuning)
	case t.ParticleMaxSpeed < 0:
		return fmt.Errorf("%w: particle_max_speed must not be negative", ErrInvalidTuning)
	case t.ParticleMinSize < 0:
		return fmt.Errorf("%w: particle_min_size must not be negative", ErrInvalidTuning)
	case t.ParticleMaxSize < t.ParticleMinSize:
		return fmt.Errorf("%w: particle size range is empty", ErrInvalidTuning)
	case t.ParticleDecay <= 0 || t.ParticleDecay > 1:
		return fmt.Errorf("%w: particle_decay must be within (0, 1]", ErrInvalidTuning)
	case t.StarCount < 0:
		return fmt.Errorf("%w: star_count must not be negative", ErrInvalidTuning)
	case t.StarMinSpeed <= 0 || t.StarMaxSpeed < t.StarMinSpeed:
		return fmt.Errorf("%w: star speed range [%g, %g) is empty or non-positive",
			ErrInvalidTuning, t.StarMinSpeed, t.StarMaxSpeed)
	case t.StarMaxSize < 0:
		return fmt.Errorf("%w: star_max_size must not be negative", ErrInvalidTuning)
	case t.KillScore <= 0:
		return fmt.Errorf("%w: kill_score must be positive", ErrInvalidTuning)
	}
	return nil
}
