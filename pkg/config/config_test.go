package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("GRPC_PORT", "")
	t.Setenv("DEDUCTION_RETRIES", "")

	cfg := Load()
	if cfg.StoreDriver != "memory" {
		t.Fatalf("expected memory driver, got %q", cfg.StoreDriver)
	}
	if cfg.GRPCPort != 8081 {
		t.Fatalf("expected grpc port 8081, got %d", cfg.GRPCPort)
	}
	if cfg.DeductionRetries != 3 {
		t.Fatalf("expected 3 retries, got %d", cfg.DeductionRetries)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Run("driver is lowercased", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "Postgres")
		if got := Load().StoreDriver; got != "postgres" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("bad int -> default", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "eighty")
		if got := Load().HTTPPort; got != 8080 {
			t.Fatalf("got %d", got)
		}
	})

	t.Run("int override", func(t *testing.T) {
		t.Setenv("POSTGRES_PORT", "6543")
		if got := Load().Postgres.Port; got != 6543 {
			t.Fatalf("got %d", got)
		}
	})

	t.Run("origin list", func(t *testing.T) {
		t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")
		got := Load().CORSOrigins
		if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
			t.Fatalf("got %v", got)
		}
	})
}
