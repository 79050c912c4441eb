package app

const usage = `Usage: uuidgen [v4|v5] [-l|--lowercase] [-u|-U|--uppercase] [-b|--binary]

Print one UUID to standard output.

  v4               random UUID (default when nothing is piped in)
  v5               name-based UUID (SHA-1, OID namespace) from piped standard input;
                   trailing whitespace of the input is trimmed by default
  (no version)     with piped input: read a UUID (text or 16 raw bytes) and
                   print it in the requested format

  -l, --lowercase      lowercase hex (default)
  -u, -U, --uppercase  uppercase hex
  -b, --binary         raw 16 bytes
  -h, --help           show this help

Later flags override earlier ones.

Configuration is read from $UUIDGEN_CONFIG or $XDG_CONFIG_HOME/uuidgen/config.toml.
`
