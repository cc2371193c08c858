// Copyright 2026 lexoffice-tools. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package sheets-invoices creates lexoffice invoices from the rows of a Google Sheets worksheet.

sheets-invoices can be used from the command line but is really intended to be run from a cron job
over a billing worksheet that is maintained by hand. Each run creates a draft invoice for every valid
row, so rows should be removed from the worksheet (or moved to another range) once invoiced.

sheets-invoices supports the following commands:

  - create-invoices, to create a draft lexoffice invoice for each row in a Google Sheets worksheet
  - get-contact, to list the lexoffice contacts for an email address
  - get, to download the billing worksheet as a TSV file
  - authorise, to authorise read access to a private Google Sheets worksheet
  - version, to display the current version
*/
package invoices
