// This file is part of CRTBeam.
//
// CRTBeam is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// CRTBeam is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with CRTBeam.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value interface{}

// types supported by the prefs system must implement the Pref interface.
type Pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
}

// hooks are shared by all pref types. the pre hook runs before the new
// value is stored and can reject it by returning an error. the post hook
// runs after the store.
type hooks struct {
	pre  func(value Value) error
	post func(value Value) error
}

func (h *hooks) runPre(v Value) error {
	if h.pre == nil {
		return nil
	}
	return h.pre(v)
}

func (h *hooks) runPost(v Value) error {
	if h.post == nil {
		return nil
	}
	return h.post(v)
}

// SetHookPre sets the callback function to be called just before the prefs
// value is updated. An error returned by the callback prevents the update.
func (h *hooks) SetHookPre(f func(value Value) error) {
	h.pre = f
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated. Note that even if the value hasn't changed, the
// callback will be executed.
func (h *hooks) SetHookPost(f func(value Value) error) {
	h.post = f
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	hooks
	value atomic.Value // bool
}

func (p *Bool) String() string {
	return fmt.Sprintf("%v", p.Get())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set
// the value to false.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		nv = strings.EqualFold(v, "true")
	default:
		return fmt.Errorf("set: cannot convert %T to prefs.Bool", v)
	}

	if err := p.runPre(nv); err != nil {
		return err
	}
	p.value.Store(nv)
	return p.runPost(nv)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return false
	}
	return ov.(bool)
}

// Int implements an integer type in the prefs system.
type Int struct {
	hooks
	value atomic.Value // int
}

func (p *Int) String() string {
	return fmt.Sprintf("%d", p.Get())
}

// Set new value to Int type. New value can be an int or string.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int:
		nv = v
	case int64:
		nv = int(v)
	case string:
		var err error
		nv, err = strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("set: cannot convert %T to prefs.Int: %w", v, err)
		}
	default:
		return fmt.Errorf("set: cannot convert %T to prefs.Int", v)
	}

	if err := p.runPre(nv); err != nil {
		return err
	}
	p.value.Store(nv)
	return p.runPost(nv)
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return 0
	}
	return ov.(int)
}

// Float implements a floating point type in the prefs system.
type Float struct {
	hooks
	value atomic.Value // float64
}

func (p *Float) String() string {
	return strconv.FormatFloat(p.Get().(float64), 'f', -1, 64)
}

// Set new value to Float type. New value can be a float64, int or string.
func (p *Float) Set(v Value) error {
	var nv float64
	switch v := v.(type) {
	case float64:
		nv = v
	case float32:
		nv = float64(v)
	case int:
		nv = float64(v)
	case string:
		var err error
		nv, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("set: cannot convert %T to prefs.Float: %w", v, err)
		}
	default:
		return fmt.Errorf("set: cannot convert %T to prefs.Float", v)
	}

	if err := p.runPre(nv); err != nil {
		return err
	}
	p.value.Store(nv)
	return p.runPost(nv)
}

// Get returns the raw pref value.
func (p *Float) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return float64(0)
	}
	return ov.(float64)
}

// String implements a string type in the prefs system.
type String struct {
	hooks
	value atomic.Value // string
}

func (p *String) String() string {
	ov := p.value.Load()
	if ov == nil {
		return ""
	}
	return ov.(string)
}

// Set new value to String type.
func (p *String) Set(v Value) error {
	nv := fmt.Sprintf("%v", v)

	if err := p.runPre(nv); err != nil {
		return err
	}
	p.value.Store(nv)
	return p.runPost(nv)
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.String()
}
