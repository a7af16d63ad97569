package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/sheikhrachel/seedlife/seed"
	"github.com/sheikhrachel/seedlife/utils"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func execute(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunStopsWhenStale(t *testing.T) {
	g := NewWithT(t)
	path := writeFile(t, "block.txt", "**\n**\n")

	out, err := execute("--rows", "6", "--cols", "6", "--delay", "0", path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(out).To(ContainSubstring("Stopped after 0 generations (stale) | Living cells: 4"))
}

func TestRunSubcommandHonoursGenerationLimit(t *testing.T) {
	g := NewWithT(t)
	path := writeFile(t, "blinker.txt", "***")

	out, err := execute("run", "--rows", "6", "--cols", "6", "--delay", "0", "--max-generations", "2", "--stats", "--plot", path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(out).To(ContainSubstring("Stopped after 2 generations (generation limit) | Living cells: 3"))
	g.Expect(out).To(ContainSubstring("Gen: 2 | Living: 3"))
	g.Expect(out).To(ContainSubstring("Final stats: 2 generations"))
	g.Expect(out).To(ContainSubstring("population per generation"))
}

func TestRunDetectsCycles(t *testing.T) {
	g := NewWithT(t)
	path := writeFile(t, "blinker.txt", "***")

	out, err := execute("--rows", "6", "--cols", "6", "--delay", "0", "--detect-cycles", "--particle", "#", path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(out).To(ContainSubstring("(cycle)"))
	g.Expect(out).To(ContainSubstring("# # #"))
}

func TestRunMissingSeed(t *testing.T) {
	g := NewWithT(t)

	_, err := execute("--rows", "6", "--cols", "6", filepath.Join(t.TempDir(), "missing.txt"))
	g.Expect(err).To(MatchError(seed.ErrSeedNotFound))
}

func TestRunRejectsBadFlags(t *testing.T) {
	g := NewWithT(t)
	path := writeFile(t, "blinker.txt", "***")

	_, err := execute("--workers", "0", path)
	g.Expect(err).To(MatchError(utils.ErrInvalidConfig))

	_, err = execute("--renderer", "gpu", path)
	g.Expect(err).To(MatchError(utils.ErrInvalidConfig))

	_, err = execute()
	g.Expect(err).To(HaveOccurred())
}

func TestBuildConfigPrecedence(t *testing.T) {
	g := NewWithT(t)
	configPath := writeFile(t, "seedlife.yaml", "particle: \"#\"\nworkers: 2\nalignment: top-right\ndelay: 10ms\n")

	cmd := newRootCmd()
	g.Expect(cmd.ParseFlags([]string{"--config", configPath, "--workers", "3", "-a", "sideways"})).To(Succeed())

	config, err := buildConfig(cmd, []string{"seed.txt"})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(config.Particle).To(Equal("#"))
	g.Expect(config.Workers).To(Equal(3))
	g.Expect(config.Alignment).To(Equal("top-right"))
	g.Expect(config.Delay.Milliseconds()).To(Equal(int64(10)))
	g.Expect(config.SeedPath).To(Equal("seed.txt"))
	g.Expect(config.Renderer).To(Equal(utils.RendererPlain))
}

func TestBench(t *testing.T) {
	g := NewWithT(t)
	path := writeFile(t, "glider.txt", " *\n  *\n***")

	out, err := execute("bench", "--rows", "12", "--cols", "12", "--generations", "10", "--workers", "3", path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(out).To(ContainSubstring("12x12"))
	g.Expect(out).To(ContainSubstring("sequential"))
	g.Expect(out).To(MatchRegexp(`parallel\s+3\s+10`))

	_, err = execute("bench", "--generations", "0", path)
	g.Expect(err).To(HaveOccurred())
}

func TestBenchWorkerCounts(t *testing.T) {
	g := NewWithT(t)
	g.Expect(benchWorkerCounts(4)).To(Equal([]int{1, 2, 4, 8}))
	g.Expect(benchWorkerCounts(6)).To(Equal([]int{1, 2, 4, 8, 6}))
}

func TestVersion(t *testing.T) {
	g := NewWithT(t)
	out, err := execute("version")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(out).To(ContainSubstring("seedlife dev"))
}
