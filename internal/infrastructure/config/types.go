package config

import "github.com/hajimehoshi/ebiten/v2"

// GameConfig is the root config for game.json
type GameConfig struct {
	Display  DisplayConfig     `json:"display"`
	Physics  PhysicsSettings   `json:"physics"`
	Court    CourtConfig       `json:"court"`
	Player   PlayerConfig      `json:"player"`
	Ball     BallConfig        `json:"ball"`
	Match    MatchConfig       `json:"match"`
	Controls [2]ControlsConfig `json:"controls"`
	Roster   RosterConfig      `json:"roster"`
	Audio    AudioConfig       `json:"audio"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Title        string `json:"title"`
}

type PhysicsSettings struct {
	Gravity       float64 `json:"gravity"`
	MaxFrameDelta float64 `json:"maxFrameDelta"` // Upper bound for a single step (seconds)
}

type CourtConfig struct {
	Width           float64 `json:"width"`
	Height          float64 `json:"height"`
	NetWidth        float64 `json:"netWidth"`
	NetHeight       float64 `json:"netHeight"`
	GroundThickness float64 `json:"groundThickness"` // Physics ground sits this far above the bottom edge
	GroundDrawn     float64 `json:"groundDrawn"`     // Height of the painted ground strip
}

type PlayerConfig struct {
	Width           float64 `json:"width"`
	Height          float64 `json:"height"`
	Speed           float64 `json:"speed"`
	JumpSpeed       float64 `json:"jumpSpeed"`
	SlideMultiplier float64 `json:"slideMultiplier"`
	SlideDuration   float64 `json:"slideDuration"`
	SpawnInset      float64 `json:"spawnInset"` // Distance of the spawn point from the outer wall
	Sprite          Size    `json:"sprite"`
	HitboxInset     Size    `json:"hitboxInset"` // Total shrink applied to the sprite bounds
}

type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type BallConfig struct {
	Radius          float64 `json:"radius"`
	InitialSpeedX   float64 `json:"initialSpeedX"`
	InitialSpeedY   float64 `json:"initialSpeedY"`
	LaunchSpread    float64 `json:"launchSpread"` // Serve angle factor is drawn from [-spread, spread]
	Restitution     float64 `json:"restitution"`
	SpinFactor      float64 `json:"spinFactor"`
	ImpactScaleX    float64 `json:"impactScaleX"`
	ImpactScaleY    float64 `json:"impactScaleY"`
	SmashMultiplier float64 `json:"smashMultiplier"`
	SmashBoost      float64 `json:"smashBoost"`
}

type MatchConfig struct {
	WinScore       int     `json:"winScore"`
	BannerDuration float64 `json:"bannerDuration"` // Seconds the simulation holds after a point
}

// ControlsConfig binds one player's intents to keys.
// Key names follow ebiten.Key text form ("A", "ArrowLeft", "ShiftLeft", ...).
type ControlsConfig struct {
	Left  ebiten.Key `json:"left"`
	Right ebiten.Key `json:"right"`
	Jump  ebiten.Key `json:"jump"`
	Slide ebiten.Key `json:"slide"`
	Smash ebiten.Key `json:"smash"`
}

type RosterConfig struct {
	Characters    []string `json:"characters"`
	Defaults      [2]int   `json:"defaults"` // Initial roster index per slot
	MaxNameLength int      `json:"maxNameLength"`
}

type AudioConfig struct {
	SampleRate  int               `json:"sampleRate"`
	MusicVolume float64           `json:"musicVolume"`
	SFXVolume   float64           `json:"sfxVolume"`
	Music       string            `json:"music"`
	Sounds      map[string]string `json:"sounds"` // Sound name -> asset path
}

// LoggerConfig holds logger.json settings
type LoggerConfig struct {
	Level      string
	Format     string // "text" or "json"
	File       string // Empty logs to stderr
	MaxSize    int    // Megabytes before rotation
	MaxBackups int
	MaxAge     int // Days
	Compress   bool
}
