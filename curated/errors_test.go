// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/test"
)

const (
	testError      = "test error: %v"
	testErrorOther = "some other error"
)

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, 10)
	test.Equate(t, curated.Is(e, testError), true)
	test.Equate(t, curated.Is(e, testErrorOther), false)
	test.Equate(t, curated.IsAny(e), true)

	// plain errors are not curated
	p := errors.New("plain")
	test.Equate(t, curated.IsAny(p), false)
	test.Equate(t, curated.Is(p, testError), false)

	test.Equate(t, curated.IsAny(nil), false)
}

func TestHas(t *testing.T) {
	inner := curated.Errorf(testErrorOther)
	outer := curated.Errorf(testError, inner)

	test.Equate(t, curated.Is(outer, testError), true)
	test.Equate(t, curated.Has(outer, testError), true)
	test.Equate(t, curated.Has(outer, testErrorOther), true)

	// Is() only looks at the outermost pattern
	test.Equate(t, curated.Is(outer, testErrorOther), false)
}

func TestDeduplication(t *testing.T) {
	// adjacent duplicate message parts collapse when errors wrap errors
	// with the same prefix
	inner := curated.Errorf("error: inner")
	outer := curated.Errorf("error: %v", inner)

	test.Equate(t, outer.Error(), "error: inner")
}
