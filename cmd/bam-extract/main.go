// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/grailbio/bamextract/extract"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
)

const version = "0.1"

var (
	bamPath      = flag.String("bam", "", "Input BAM path (single-file mode); this xor -bamlist required")
	bamListPath  = flag.String("bamlist", "", "Newline-delimited list of input BAM paths (batch mode); this xor -bam required")
	targetPath   = flag.String("target", "", "Newline-delimited list of regions (chr:start-stop) to extract; required")
	workdir      = flag.String("workdir", "", "Output root directory; required")
	force        = flag.Bool("force", extract.DefaultOpts.Force, "Re-run extraction and merge even when outputs already exist")
	parallelism  = flag.Int("parallelism", extract.DefaultOpts.Parallelism, "Maximum number of simultaneous per-BAM tasks in batch mode; 0 = runtime.NumCPU()")
	printVersion = flag.Bool("version", false, "Print the program version and exit")
)

// Exit codes: 0 success, 1 fatal run error, 2 usage error.
const usageExitCode = 2

func bamExtractUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s -target targets.list -workdir dir {-bam in.bam | -bamlist bams.list}\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}

func usageError(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	bamExtractUsage()
	os.Exit(usageExitCode)
}

func main() {
	flag.Usage = bamExtractUsage
	if len(os.Args) == 1 {
		bamExtractUsage()
		os.Exit(usageExitCode)
	}
	shutdown := grail.Init()
	defer shutdown()

	if *printVersion {
		fmt.Printf("bam-extract (version %s)\n", version)
		return
	}
	switch {
	case *bamPath == "" && *bamListPath == "":
		usageError("exactly one of -bam or -bamlist is required")
	case *bamPath != "" && *bamListPath != "":
		usageError("-bam and -bamlist are mutually exclusive")
	case *targetPath == "":
		usageError("-target is required")
	case *workdir == "":
		usageError("-workdir is required")
	}

	opts := extract.DefaultOpts
	opts.TargetsPath = *targetPath
	opts.Workdir = *workdir
	opts.Force = *force
	opts.Parallelism = *parallelism

	ctx := vcontext.Background()
	if err := extract.Run(ctx, opts, *bamPath, *bamListPath); err != nil {
		log.Fatalf("bam-extract: %v", err)
	}
}
