/*Package interval holds the record-level data model for BED-style genomic
  intervals: parsing and writing the tab-delimited boundary format, fixed-width
  interval extension, and genome (chromosome length) descriptions.
  Records keep their auxiliary columns and input order; every transformation
  is a pure function from Set to Set.
*/
package interval
