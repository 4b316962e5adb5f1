/*
Package sequences provides text operations over control sequences: strip,
match, parse, replace and escape.

Programs running within terminals only have a single way to communicate
with the terminal: writing bytes to the connected file descriptor. In order
to differentiate between text to be displayed and commands to be executed,
terminals use special syntax known collectively as control sequences.

Due to the historical nature of terminals, control sequences come in a
handful of different formats. Most begin with an escape character (0x1B),
and each 7-bit ESC form has an 8-bit C1 equivalent. The recognized
families are:

  - CSI Sequences ("Control Sequence Introducer"), SGR included
  - OSC Sequences ("Operating System Command")
  - DCS Sequences ("Device Control String")
  - SOS Sequences ("Start Of String")
  - PM Sequences ("Privacy Message")
  - APC Sequences ("Application Program Command")
  - nF escapes (charset designation and friends)
  - Fp/Fe/Fs two character escapes and single C1 codes
  - VT100 device status reports

Every operation is total: anything that is not a recognized sequence is
literal text.
*/
package sequences
