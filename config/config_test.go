package config

import "testing"

func TestLoadDefauts(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("port = %d, attendu 8000", cfg.Server.Port)
	}
	if cfg.Database.Name != "intervenants_db" {
		t.Errorf("db.name = %q", cfg.Database.Name)
	}
	if cfg.Database.Timezone != "Europe/Paris" {
		t.Errorf("db.timezone = %q", cfg.Database.Timezone)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("log.format = %q", cfg.Log.Format)
	}
	if len(cfg.Server.CORS.AllowOrigins) == 0 {
		t.Error("origines CORS par défaut absentes")
	}
}

func TestLoadSurchargeParEnvironnement(t *testing.T) {
	t.Setenv("INTERVENANTS_SERVER_PORT", "9090")
	t.Setenv("INTERVENANTS_DB_NAME", "intervenants_test")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, attendu 9090", cfg.Server.Port)
	}
	if cfg.Database.Name != "intervenants_test" {
		t.Errorf("db.name = %q", cfg.Database.Name)
	}
}

func TestLoadPortInvalide(t *testing.T) {
	t.Setenv("INTERVENANTS_SERVER_PORT", "70000")

	if _, err := Load(""); err == nil {
		t.Fatal("un port hors bornes doit être rejeté")
	}
}

func TestDSN(t *testing.T) {
	c := DatabaseConfig{
		Host: "localhost", Port: 5432, Name: "intervenants_db",
		User: "postgres", Password: "postgres", SSLMode: "disable", Timezone: "Europe/Paris",
	}
	attendu := "host=localhost port=5432 user=postgres password=postgres dbname=intervenants_db sslmode=disable TimeZone=Europe/Paris"
	if got := c.DSN(); got != attendu {
		t.Errorf("dsn = %q", got)
	}
}
