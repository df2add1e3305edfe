// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package word

import (
	"slices"
	"strconv"
)

// ToString renders a word as a string of '0' and '1' characters, most
// significant bit first.  Leading zeros are omitted, hence the zero word gives
// "0".
func ToString(v uint64) string {
	return strconv.FormatUint(v, 2)
}

// ToStringLow renders a word as a string of '0' and '1' characters, least
// significant bit first.  Trailing (i.e. high) zeros are omitted, hence the
// zero word gives "0".
func ToStringLow(v uint64) string {
	digits := []byte(strconv.FormatUint(v, 2))
	slices.Reverse(digits)
	//
	return string(digits)
}
