/*
Copyright (C) 2025  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
/*
	carcdr, a small embeddable Scheme

	https://pkelchte.wordpress.com/2013/12/31/scm-go/

*/
package main

import "os"
import "fmt"
import "flag"
import "time"
import "crypto/rand"
import "runtime/debug"
import "github.com/dc0d/onexit"
import "github.com/google/uuid"
import "github.com/docker/go-units"
import "github.com/fsnotify/fsnotify"
import "github.com/schemelab/carcdr/scm"

var verbose bool

// workaround for flags package to allow multiple values
type arrayFlags []string

func (i *arrayFlags) String() string {
	return "dummy"
}

func (i *arrayFlags) Set(value string) error {
	*i = append(*i, value)
	return nil
}

func setupIO() {
	// IO builtins live here rather than in scm, which stays sandboxable
	scm.DeclareTitle("IO")
	scm.Declare(&scm.Globalenv, &scm.Declaration{
		Name: "print", Desc: "prints values to stdout followed by a newline",
		MinParameter: 1, MaxParameter: 1000,
		Params: []scm.DeclarationParameter{
			scm.DeclarationParameter{Name: "value...", Type: "any", Desc: "values to print"},
		}, Returns: "bool",
		Fn: func(a ...scm.Scmer) scm.Scmer {
			for _, s := range a {
				fmt.Print(scm.String(s))
			}
			fmt.Println()
			return true
		},
	})
	scm.Declare(&scm.Globalenv, &scm.Declaration{
		Name: "help", Desc: "lists all functions or prints help for a specific function",
		MinParameter: 0, MaxParameter: 1,
		Params: []scm.DeclarationParameter{
			scm.DeclarationParameter{Name: "topic", Type: "func", Desc: "function to print help about"},
		}, Returns: "nil",
		Fn: func(a ...scm.Scmer) scm.Scmer {
			if len(a) == 0 {
				scm.Help(nil)
			} else {
				scm.Help(a[0])
			}
			return nil
		},
	})
	scm.Declare(&scm.Globalenv, &scm.Declaration{
		Name: "uuid", Desc: "returns a fresh random UUID as a symbol",
		MinParameter: 0, MaxParameter: 0,
		Params: []scm.DeclarationParameter{}, Returns: "symbol",
		Fn: func(a ...scm.Scmer) scm.Scmer {
			return scm.Symbol(uuid.New().String())
		},
	})
}

func evalFile(filename string, en *scm.Env) error {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Println("loading " + filename + " (" + units.HumanSize(float64(len(bytes))) + ") ...")
	}
	_, err = scm.EvalAll(string(bytes), en)
	return err
}

// watchFiles reloads each file into en whenever it changes on disk. Reload
// errors are printed, not fatal; definitions from the failed run up to the
// error stay in en.
func watchFiles(files []string, en *scm.Env) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		panic(err)
	}
	go func() {
		for event := range watcher.Events {
			// flush all other events
			for {
				time.Sleep(10 * time.Millisecond) // delay a bit, so we don't read empty files
				select {
				case <-watcher.Events:
					// ignore
				default:
					goto to_reread
				}
			}
		to_reread:
			if err := evalFile(event.Name, en); err != nil {
				fmt.Println("reload of " + event.Name + " failed: " + err.Error())
			}
			watcher.Add(event.Name) // text editors rename, so we have to rewatch
		}
	}()
	for _, f := range files {
		if err := watcher.Add(f); err != nil {
			panic(err)
		}
	}
}

func main() {
	fmt.Print(`carcdr Copyright (C) 2025   Carl-Philip Hänsch
    This program comes with ABSOLUTELY NO WARRANTY;
    This is free software, and you are welcome to redistribute it
    under certain conditions;

`)

	// deep recursion instead of TCO, so raise the stack cap
	debug.SetMaxStack(1 << 30)

	// init random generator for UUIDs
	uuid.SetRand(rand.Reader)

	// parse command line options
	var commands arrayFlags
	flag.Var(&commands, "c", "Execute scm command")

	watch := false
	flag.BoolVar(&watch, "watch", false, "Reload the given script files whenever they change on disk")

	docs := ""
	flag.StringVar(&docs, "docs", "", "Write builtin documentation as Markdown into the given folder and exit")

	flag.BoolVar(&verbose, "v", false, "Verbose load logging")

	flag.Parse()
	files := flag.Args()

	setupIO()

	if docs != "" {
		if err := scm.WriteDocumentation(docs); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		return
	}

	// one persistent frame shared by files, -c commands and the REPL
	en := scm.NewEnv(&scm.Globalenv)

	for _, scmfile := range files {
		if err := evalFile(scmfile, en); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}
	if watch {
		watchFiles(files, en)
	}
	for _, command := range commands {
		result, err := scm.EvalAll(command, en)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println(scm.String(result))
	}
	if len(commands) > 0 && !watch {
		return
	}

	onexit.Register(func() {
		if scm.ReplInstance != nil {
			// in case it doesn't exit properly
			scm.ReplInstance.Close()
		}
	})

	fmt.Print(`
    Type (help) to show help, QUIT to leave

`)
	// REPL shell
	scm.Repl(en)
}
