// Package field parses the schema mini-language into field descriptors.
//
// A schema is a comma separated list of field definitions. Each definition
// names a field and optionally carries a type and modifiers, separated by
// colons:
//
//	title:string, content:text, published_at:date:nullable, user_id:foreignId
//
// The type defaults to "string" when omitted:
//
//	field.Parse("name, email:string:unique")
//	// name:string, email:string:unique
//
// # Types
//
// Types are free-form. The well-known names below are grouped into a
// Family so generators can pick a fragment per family instead of per name.
// Anything else falls into FamilyOther and receives a generic fragment.
//
//	string, char                                   FamilyString
//	text, mediumText, longText                     FamilyText
//	integer, tinyInteger, smallInteger, ...        FamilyInteger
//	decimal, float, double                         FamilyDecimal
//	boolean                                        FamilyBoolean
//	date                                           FamilyDate
//	dateTime, timestamp                            FamilyDateTime
//	time                                           FamilyTime
//	year                                           FamilyYear
//	json, jsonb                                    FamilyJSON
//	foreignId                                      FamilyForeign
//	uuid                                           FamilyUUID
//
// # Modifiers
//
// Modifiers are bare tags (nullable, unique, index, unsigned) or key/value
// tags. The value keys "default" and "comment" consume the next segment:
//
//	status:string:default:draft:comment:Publication state
//
// There is no escaping for commas or colons inside a value.
//
// # Foreign Keys
//
// A field is a foreign key when its name ends in "_id" or its type is
// foreignId. RelationName strips the suffix; resolving it to an entity name
// is the job of the naming package.
package field
