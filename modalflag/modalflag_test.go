// This file is part of Telequad.
//
// Telequad is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Telequad is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Telequad.  If not, see <https://www.gnu.org/licenses/>.

package modalflag_test

import (
	"os"
	"testing"

	"github.com/jetplume/telequad/modalflag"
	"github.com/jetplume/telequad/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.Mode(), "")
	test.Equate(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")

	test.Equate(t, *testFlag, false)

	p, err := md.Parse()
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.Mode(), "")

	test.Equate(t, *testFlag, true)
	test.Equate(t, len(md.RemainingArgs()), 2)
}

func TestSubModeSelection(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{"performance", "-duration", "10s"})
	md.AddSubModes("run", "performance", "version")

	p, err := md.Parse()
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.Mode(), "PERFORMANCE")

	// descend into the selected mode
	md.NewMode()
	duration := md.AddString("duration", "5s", "run duration")

	p, err = md.Parse()
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.ExpectedSuccess(t, err)
	test.Equate(t, *duration, "10s")
	test.Equate(t, md.Path(), "PERFORMANCE")
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{Output: os.Stdout}
	md.NewArgs([]string{})
	md.AddSubModes("run", "performance", "version")

	p, err := md.Parse()
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.ExpectedSuccess(t, err)

	// no argument matches a sub-mode so the default (first listed) is chosen
	test.Equate(t, md.Mode(), "RUN")
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.Equate(t, p == modalflag.ParseHelp, true)
	test.Equate(t, tw.Compare("No help available\n"), true)
}

func TestHelpFlags(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.Equate(t, p == modalflag.ParseHelp, true)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n"

	test.Equate(t, tw.Compare(expectedHelp), true)
}

func TestHelpModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.Equate(t, p == modalflag.ParseHelp, true)

	expectedHelp := "Usage:\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"

	test.Equate(t, tw.Compare(expectedHelp), true)
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.Equate(t, p == modalflag.ParseHelp, true)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n" +
		"\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"

	test.Equate(t, tw.Compare(expectedHelp), true)
}
