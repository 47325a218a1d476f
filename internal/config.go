package internal

import "time"

type Config struct {
	APIBaseURL     string        `env:"API_BASE_URL,required=true"`
	RealtimeURL    string        `env:"REALTIME_URL,required=true"`
	SessionToken   string        `env:"SESSION_TOKEN,required=true"`
	RoomID         string        `env:"ROOM_ID,required=true"`
	PageSize       int           `env:"PAGE_SIZE,default=50"`
	StreamBuffer   int           `env:"STREAM_BUFFER,default=64"`
	SeenFlushDelay time.Duration `env:"SEEN_FLUSH_DELAY,default=500ms"`
	CooldownTick   time.Duration `env:"COOLDOWN_TICK,default=1m"`
	BadgerFilepath string        `env:"BADGER_FILEPATH,default=.turnroom/history"`
	LogLevel       string        `env:"LOG_LEVEL,default=INFO"`
}
