/*
 * Lumina - a semantic model for the Lumina programming language
 *
 * Copyright Lumina Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// memberbench loads a corpus of generic class declarations,
// repeatedly specializes their members through the requested
// instantiations, and reports how many member views were produced
// versus how many declarations were returned unchanged.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/k0kubun/pp/v3"
	"github.com/logrusorgru/aurora/v4"
	"github.com/schollz/progressbar/v3"

	"github.com/lumina-lang/lumina/sema"
)

var corpusPath = flag.String("corpus", "corpus.yaml", "path to the corpus file")
var iterations = flag.Int("iterations", 1000, "number of specialization rounds")
var dump = flag.Bool("dump", false, "pretty-print the produced member views")
var cpuProfilePath = flag.String("cpuprofile", "", "write a CPU profile to the given file")

func main() {
	flag.Parse()

	c, err := loadCorpus(*corpusPath)
	if err != nil {
		log.Fatal(err)
	}

	model, err := c.build()
	if err != nil {
		log.Fatal(err)
	}

	if len(model.requests) == 0 {
		log.Fatal("corpus contains no requests")
	}

	if *cpuProfilePath != "" {
		profileFile, err := os.Create(*cpuProfilePath)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			_ = profileFile.Close()
		}()

		err = pprof.StartCPUProfile(profileFile)
		if err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	sink := &sema.RecordingSink{}
	specializer := sema.NewSpecializer(sink)

	bar := progressbar.Default(int64(*iterations), "(specializing)")

	var total, specialized int

	for i := 0; i < *iterations; i++ {
		for _, request := range model.requests {
			for _, member := range specializer.Members(request) {
				total++
				if _, ok := member.(sema.SpecializedDeclaration); ok {
					specialized++
				}
			}
		}
		_ = bar.Add(1)
	}

	au := aurora.New(aurora.WithColors(true))

	fmt.Println()
	fmt.Printf(
		"%s requests, %s member lookups:\n",
		au.Bold(len(model.requests)),
		au.Bold(total),
	)
	fmt.Printf("  %s specialized\n", au.Green(specialized))
	fmt.Printf("  %s unchanged\n", au.Yellow(total-specialized))
	if len(sink.Diagnostics) > 0 {
		// the sink accumulates across rounds, report the first round only
		perRound := len(sink.Diagnostics) / *iterations
		fmt.Printf("  %s diagnostics per round\n", au.Red(perRound))
		for _, diagnostic := range sink.Diagnostics[:perRound] {
			fmt.Printf("    %s\n", au.Red(diagnostic.Error()))
		}
	}

	if *dump {
		for _, request := range model.requests {
			fmt.Println()
			fmt.Println(au.Bold(request.String()))

			for _, member := range specializer.Members(request) {
				describeMember(member)
			}
		}
	}
}

func describeMember(member sema.Declaration) {
	view, ok := member.(sema.SpecializedDeclaration)
	if !ok {
		fmt.Printf("  %s %s (unchanged)\n", member.Kind().Name(), member.Name())
		return
	}

	fmt.Printf("  %s %s\n", view.Kind().Name(), view.Name())

	switch view := view.(type) {
	case sema.Executable:
		_, _ = pp.Println(view.Signature().String())
	case sema.Variable:
		_, _ = pp.Println(view.Type().String())
	}
}
