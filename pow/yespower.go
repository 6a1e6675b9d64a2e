// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"fmt"

	yespower "github.com/bitweb-project/bitweb_yespower_go"

	"github.com/bitweb-project/bewcore/chainhash"
)

// yespowerParams mirrors the C++ yespower_params_t: version 1.0, memory
// cost N, block size r, and an optional personalisation string mixed into
// the tag.
type yespowerParams struct {
	N    uint32
	R    uint32
	Pers []byte
}

// yespowerAParams is the YespowerA engine's parameter set: N=2048, r=8,
// personalised with the bewcore1 launch tag.
var yespowerAParams = yespowerParams{
	N:    2048,
	R:    8,
	Pers: []byte("One POW? Why not two? 17/04/2024"),
}

// yespowerBParams is the YespowerB engine's parameter set: N=2048, r=32,
// unpersonalised. This is the parameterization the genesis blocks were
// mined under.
var yespowerBParams = yespowerParams{
	N:    2048,
	R:    32,
	Pers: nil,
}

// yespowerHash invokes the yespower 1.0 reference algorithm via the
// bitweb_yespower_go binding. A failure here (out of memory is the only
// realistic cause) is bubbled up as an error rather than retried or
// masked.
func yespowerHash(data []byte, params yespowerParams) (chainhash.Hash, error) {
	sum, err := yespower.Hash(data, params.N, params.R, params.Pers)
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("pow: yespower (N=%d, r=%d) failed: %w", params.N, params.R, err)
	}

	var out chainhash.Hash
	copy(out[:], sum[:])
	return out, nil
}
