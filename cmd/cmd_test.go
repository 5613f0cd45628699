package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/spf13/cobra"
)

const trainerCase = `
name: trainer
wing:
  span: 3
  root_chord: 0.4
  tip_chord: 0.25
  lift_coefficient: 1.1
  velocity: 20
  altitude: 300
analysis:
  stations: 40
  load_factor: 3.8
spar:
  material: 7075-T6
`

func Test_cmd01(tst *testing.T) {

	chk.PrintTitle("cmd01. analyze writes every requested output")

	dir := tst.TempDir()
	casePath := filepath.Join(dir, "trainer.yaml")
	if err := os.WriteFile(casePath, []byte(trainerCase), 0644); err != nil {
		tst.Fatal(err)
	}
	xlsx := filepath.Join(dir, "trainer.xlsx")
	pdf := filepath.Join(dir, "trainer.pdf")
	png := filepath.Join(dir, "charts", "trainer.png")

	rootCmd.SetArgs([]string{
		"analyze", "--config", filepath.Join(dir, "none.ini"),
		"--case", casePath, "--xlsx", xlsx, "--pdf", pdf, "-o", png,
	})
	// an explicit missing settings file is an error
	if err := rootCmd.Execute(); err == nil {
		tst.Errorf("missing --config file must fail")
	}

	ini := filepath.Join(dir, "gowing.ini")
	if err := os.WriteFile(ini, []byte("[log]\nlevel = error\n"), 0644); err != nil {
		tst.Fatal(err)
	}
	rootCmd.SetArgs([]string{
		"analyze", "--config", ini,
		"--case", casePath, "--xlsx", xlsx, "--pdf", pdf, "-o", png,
	})
	if err := rootCmd.Execute(); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	for _, f := range []string{xlsx, pdf,
		filepath.Join(dir, "charts", "trainer_moment.png"),
		filepath.Join(dir, "charts", "trainer_spar.png"),
	} {
		if _, err := os.Stat(f); err != nil {
			tst.Errorf("%s not written: %v", f, err)
		}
	}
	chk.Int(tst, "default stations", settings.Stations, 100)
}

func Test_cmd02(tst *testing.T) {

	chk.PrintTitle("cmd02. output helpers")

	files := embeddable([]string{"a.png", "b.svg", "c.pdf", "d.PNG", "e.jpg", "f.tif"})
	chk.Int(tst, "embeddable files", len(files), 3)

	settings.OutputDir = tst.TempDir()
	if p := outputPath("sub/report.pdf"); p != "sub/report.pdf" {
		tst.Errorf("paths with a directory must be kept, got %s", p)
	}
	if p := outputPath("report.pdf"); p != filepath.Join(settings.OutputDir, "report.pdf") {
		tst.Errorf("bare names go to the output directory, got %s", p)
	}
}

func Test_cmd03(tst *testing.T) {

	chk.PrintTitle("cmd03. tip chord flag")

	parse := func(args ...string) *wingFlags {
		var f wingFlags
		f.register(&cobra.Command{Use: "wing"})
		if err := f.cmd.Flags().Parse(args); err != nil {
			tst.Fatalf("unexpected error: %v", err)
		}
		return &f
	}

	c := parse("--span", "4", "--root-chord", "0.5", "-v", "15").toCase("rect")
	chk.Float64(tst, "default tip", 1e-15, c.Wing.TipChord, 0.5)

	c = parse("--span", "4", "--root-chord", "0.5", "--tip-chord", "0.2", "-v", "15").toCase("taper")
	chk.Float64(tst, "given tip  ", 1e-15, c.Wing.TipChord, 0.2)

	c = parse("--span", "4", "--root-chord", "0.5", "--tip-chord", "0", "-v", "15").toCase("pointed")
	chk.Float64(tst, "pointed tip", 1e-15, c.Wing.TipChord, 0)
	w, err := c.BuildWing()
	if err != nil {
		tst.Fatalf("a pointed tip is a valid wing: %v", err)
	}
	chk.Float64(tst, "taper ratio", 1e-15, w.TaperRatio(), 0)
}
