// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package calibration recovers calibration values from the lines of an
// amended calibration document.
//
// Each line is first resolved into a string of ascii digits: literal digits
// are kept and every position that starts a spelled-out digit word ("zero"
// through "nine") contributes that word's digit. The scan moves one character
// at a time, so words that share letters ("twone", "eightwo") all count.
//
// The first and last digit of the resolved line form a two-digit calibration
// value, and the values of all lines are summed. Any line that yields no digit
// aborts the whole computation.
package calibration
