package canal

import "testing"

func TestLoadOptionsFromEnvDefaults(t *testing.T) {
	cap, opts, err := LoadOptionsFromEnv()
	if err != nil {
		t.Fatalf("LoadOptionsFromEnv: %v", err)
	}
	if cap != 1024 {
		t.Fatalf("segmentCapacity = %d, want 1024", cap)
	}

	options := resolveOptions(opts)
	if options.metricsLabel != "default" {
		t.Fatalf("metricsLabel = %q, want default", options.metricsLabel)
	}
}

func TestLoadOptionsFromEnvOverrides(t *testing.T) {
	t.Setenv("CANAL_SEGMENT_CAPACITY", "256")
	t.Setenv("CANAL_METRICS_LABEL", "orders")

	cap, opts, err := LoadOptionsFromEnv()
	if err != nil {
		t.Fatalf("LoadOptionsFromEnv: %v", err)
	}
	if cap != 256 {
		t.Fatalf("segmentCapacity = %d, want 256", cap)
	}

	options := resolveOptions(opts)
	if options.metricsLabel != "orders" {
		t.Fatalf("metricsLabel = %q, want orders", options.metricsLabel)
	}
}

func TestWithMetricsLabel(t *testing.T) {
	c := WithSegmentCapacity[int](4, WithMetricsLabel("payments"))
	if c.metricsLabel != "payments" {
		t.Fatalf("metricsLabel = %q, want payments", c.metricsLabel)
	}
}
