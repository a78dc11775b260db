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

/*
bam-extract pulls a fixed set of regions out of one or many BAM files with
"samtools view", then merges and indexes each input's region subsets into a
single <prefix>.targets.bam. Inputs are processed in parallel, one worker per
BAM; regions within a BAM are extracted sequentially in target-list order.

Re-runs are idempotent: any region subset or merged BAM that already exists on
disk is skipped (and marked SKIP in the per-BAM log) unless -force is given.
Failed "samtools view" calls are retried with exponential backoff before the
BAM is marked failed; in batch mode one BAM's failure does not stop the
others.

Sample usage:
bam-extract \
    --target primary_targets.list \
    --workdir ./outputs \
    --bamlist bam_batch.list

Outputs land under <workdir>/<prefix>/ for each input BAM:
its per-run log, <prefix>.targets.bam with its .bai index, and a subbam/
directory holding the per-region BAMs plus bam.list, the manifest consumed by
"samtools merge -b".
*/
package main
